package event

// Definition binds an event payload type E to its cancellation state type C
// and audience type A, along with a runtime mutability tag and a stable name.
//
// A Definition is a type-level key: registries and dispatches are looked up
// by the definition's pointer identity. Create definitions once, as
// package-level variables, and share them between registration and dispatch
// sites. The configuration is fixed for the lifetime of the event kind.
type Definition[E any, C Cancellation, A any] struct {
	name    string
	mutable bool
}

// DefineOption configures a Definition at creation time.
type DefineOption func(*defineConfig)

type defineConfig struct {
	mutable bool
}

// WithMutable marks the event kind as mutable, allowing handlers to edit the
// event in place through Receive.EventMut. Kinds are immutable by default.
func WithMutable() DefineOption {
	return func(cfg *defineConfig) {
		cfg.mutable = true
	}
}

// Define creates the Definition for an event kind.
//
// The name identifies the kind in logs, metrics, and error messages
// (e.g. "entity.damage"); it carries no dispatch semantics.
func Define[E any, C Cancellation, A any](name string, opts ...DefineOption) *Definition[E, C, A] {
	cfg := &defineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Definition[E, C, A]{
		name:    name,
		mutable: cfg.mutable,
	}
}

// Name returns the stable name of the event kind.
func (d *Definition[E, C, A]) Name() string {
	return d.name
}

// Mutable reports whether handlers may edit the event in place.
func (d *Definition[E, C, A]) Mutable() bool {
	return d.mutable
}

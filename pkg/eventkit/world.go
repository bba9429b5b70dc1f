package eventkit

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/randalmurphal/eventkit/pkg/eventkit/config"
	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
	"github.com/randalmurphal/eventkit/pkg/eventkit/registry"
)

// World is the shared-state container handlers run against.
//
// It owns the registry of handler registries (one per event kind, created
// lazily on first registration), a typed resource map, and the deferred
// command queue. A World is created at host start and lives until the host
// tears it down; registries only grow for its lifetime.
//
// A World is safe for concurrent use. Handlers within one dispatch always
// run sequentially; see the package documentation for the full model.
type World struct {
	mu         sync.Mutex
	registries map[any]any          // *event.Definition -> *registry.Registry[Handler]
	resources  map[reflect.Type]any // resource type -> *T

	commands commandQueue

	cfg     config.Config
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// Option configures a World at creation time.
type Option func(*World)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithConfig applies a full configuration.
// Validate the configuration before passing it in; New does not re-check it.
func WithConfig(cfg config.Config) Option {
	return func(w *World) {
		w.cfg = cfg
	}
}

// WithMetrics overrides the metrics recorder chosen by the configuration.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(w *World) {
		if m != nil {
			w.metrics = m
		}
	}
}

// WithSpans overrides the span manager chosen by the configuration.
func WithSpans(s observability.SpanManager) Option {
	return func(w *World) {
		if s != nil {
			w.spans = s
		}
	}
}

// New creates a World.
func New(opts ...Option) *World {
	w := &World{
		registries: make(map[any]any),
		resources:  make(map[reflect.Type]any),
		cfg:        config.Default(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	w.commands.grow(w.cfg.CommandQueueCapacity)

	if w.metrics == nil {
		if w.cfg.Metrics {
			w.metrics = observability.NewMetricsRecorder()
		} else {
			w.metrics = observability.NoopMetrics{}
		}
	}
	if w.spans == nil {
		if w.cfg.Tracing {
			w.spans = observability.NewSpanManager()
		} else {
			w.spans = observability.NoopSpanManager{}
		}
	}

	return w
}

// Logger returns the World's logger. Never nil.
func (w *World) Logger() *slog.Logger {
	return w.logger
}

// registryFor returns the handler registry for def, creating it when create
// is set. Returns nil when absent and create is false: dispatching an event
// kind with no listeners is not an error.
func registryFor[E any, C event.Cancellation, A any](
	w *World,
	def *event.Definition[E, C, A],
	create bool,
) *registry.Registry[Handler[E, C, A]] {
	w.mu.Lock()
	defer w.mu.Unlock()

	if r, ok := w.registries[def]; ok {
		return r.(*registry.Registry[Handler[E, C, A]])
	}
	if !create {
		return nil
	}

	r := registry.New[Handler[E, C, A]]()
	w.registries[def] = r
	return r
}

// Resource returns the World's resource of type T, creating a zero value on
// first access. Resources are how handlers share state across invocations:
//
//	type HitLog struct{ Entries []string }
//
//	log := eventkit.Resource[HitLog](w)
//	log.Entries = append(log.Entries, "...")
//
// The same pointer is returned for every call with the same T.
func Resource[T any](w *World) *T {
	w.mu.Lock()
	defer w.mu.Unlock()

	t := reflect.TypeFor[T]()
	if v, ok := w.resources[t]; ok {
		return v.(*T)
	}

	v := new(T)
	w.resources[t] = v
	return v
}

// SetResource replaces the World's resource of type T.
func SetResource[T any](w *World, v *T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resources[reflect.TypeFor[T]()] = v
}

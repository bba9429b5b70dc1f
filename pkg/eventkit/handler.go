package eventkit

import (
	"context"
	"fmt"

	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
)

// Handler reacts to one event kind.
//
// A handler is initialized exactly once, synchronously, at registration time
// — before it is reachable by any dispatch — and invoked many times after
// that. The engine does not interpret what a handler reads or writes; shared
// state goes through the World's resources.
type Handler[E any, C event.Cancellation, A any] interface {
	// Initialize runs once at registration, before the handler is inserted
	// into the registry. Resolve resources and do one-time setup here, never
	// lazily on first dispatch.
	Initialize(w *World)

	// Handle processes one received event.
	Handle(rcv *event.Receive[E, C, A], w *World)
}

// HandlerFunc adapts a function to the Handler interface with a no-op
// Initialize.
type HandlerFunc[E any, C event.Cancellation, A any] func(rcv *event.Receive[E, C, A], w *World)

// Initialize does nothing.
func (f HandlerFunc[E, C, A]) Initialize(*World) {}

// Handle implements Handler.
func (f HandlerFunc[E, C, A]) Handle(rcv *event.Receive[E, C, A], w *World) {
	f(rcv, w)
}

// HandlerOption configures a registration.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	priority event.Priority
}

// WithPriority sets the handler's priority. Defaults to event.Normal.
func WithPriority(p event.Priority) HandlerOption {
	return func(cfg *handlerConfig) {
		cfg.priority = p
	}
}

// AddHandler registers h for the event kind def.
//
// The handler's Initialize hook runs first; only then is the handler
// inserted, so a dispatch can never observe a half-initialized handler.
// Registration always succeeds and cannot be undone.
func AddHandler[E any, C event.Cancellation, A any](
	w *World,
	def *event.Definition[E, C, A],
	h Handler[E, C, A],
	opts ...HandlerOption,
) {
	cfg := handlerConfig{priority: event.Normal}
	for _, opt := range opts {
		opt(&cfg)
	}

	h.Initialize(w)

	reg := registryFor(w, def, true)
	reg.Insert(cfg.priority, h)

	observability.LogRegistration(w.logger, def.Name(), handlerName(h), cfg.priority.String())
	w.metrics.RecordRegistration(context.Background(), def.Name())
}

// On registers a plain function as a handler for def. It is the common
// registration path; use AddHandler with a Handler implementation when the
// handler needs an Initialize hook.
func On[E any, C event.Cancellation, A any](
	w *World,
	def *event.Definition[E, C, A],
	fn func(rcv *event.Receive[E, C, A], w *World),
	opts ...HandlerOption,
) {
	AddHandler(w, def, HandlerFunc[E, C, A](fn), opts...)
}

// handlerName extracts a name for a handler (for logging/metrics).
func handlerName(h any) string {
	return fmt.Sprintf("%T", h)
}

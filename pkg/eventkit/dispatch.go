package eventkit

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/eventkit/pkg/eventkit/config"
	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
	"github.com/randalmurphal/eventkit/pkg/eventkit/registry"
)

// Post dispatches an event by value to every handler registered for def,
// consuming it. The returned cancellation state reports whether a handler
// halted the chain.
//
// The event itself is not returned: for mutable kinds, in-place edits made
// before a cancellation are not recoverable by the caller. Use PostMut when
// the caller needs the post-dispatch event.
func Post[E any, C event.Cancellation](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, event.None],
	evt E,
) C {
	return PostTo(ctx, w, def, evt, event.None{})
}

// PostTo dispatches an event by value with an explicit audience.
func PostTo[E any, C event.Cancellation, A any](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, A],
	evt E,
	audience A,
) C {
	return dispatch(ctx, w, def, &evt, audience)
}

// PostRef dispatches an event by reference without permitting modification.
// The kind must be immutable; the caller retains ownership of the event.
//
// Panics with a *event.ContractError if def is mutable.
func PostRef[E any, C event.Cancellation](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, event.None],
	evt *E,
) C {
	return PostRefTo(ctx, w, def, evt, event.None{})
}

// PostRefTo dispatches an event by immutable reference with an explicit
// audience.
func PostRefTo[E any, C event.Cancellation, A any](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, A],
	evt *E,
	audience A,
) C {
	if def.Mutable() {
		panic(&event.ContractError{
			Event:  def.Name(),
			Op:     "PostRef",
			Reason: "event kind is mutable; use PostMut",
		})
	}
	return dispatch(ctx, w, def, evt, audience)
}

// PostMut dispatches an event by mutable reference. The kind must be
// mutable; the caller retains ownership and observes in-place edits after
// the dispatch returns.
//
// Panics with a *event.ContractError if def is immutable.
func PostMut[E any, C event.Cancellation](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, event.None],
	evt *E,
) C {
	return PostMutTo(ctx, w, def, evt, event.None{})
}

// PostMutTo dispatches an event by mutable reference with an explicit
// audience.
func PostMutTo[E any, C event.Cancellation, A any](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, A],
	evt *E,
	audience A,
) C {
	if !def.Mutable() {
		panic(&event.ContractError{
			Event:  def.Name(),
			Op:     "PostMut",
			Reason: "event kind is immutable; use PostRef",
		})
	}
	return dispatch(ctx, w, def, evt, audience)
}

// dispatch is the single algorithm behind every Post variant.
//
// It snapshots the registry once, then walks the snapshot highest priority
// first: lock the handler, build its Receive, invoke it, unlock, apply
// deferred commands, and stop as soon as the shared cancellation state
// reports cancelled. Handlers registered during the walk join future
// dispatches, never this one.
func dispatch[E any, C event.Cancellation, A any](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, A],
	evt *E,
	audience A,
) C {
	var cancellation C

	reg := registryFor(w, def, false)
	if reg == nil {
		// No one is listening. Not an error.
		observability.LogNoListeners(w.logger, def.Name())
		return cancellation
	}

	ctx, span := w.spans.StartDispatchSpan(ctx, def.Name())
	done := observability.TimedOperation()
	start := time.Now()

	handlers := reg.Handlers()
	invoked := 0

	for _, g := range handlers {
		invokeOne(ctx, w, def, g, evt, &cancellation, audience)
		invoked++

		// Barrier: commands queued by the handler apply before the next
		// handler of this dispatch runs.
		w.Flush()

		if cancellation.Cancelled() {
			w.spans.AddSpanEvent(ctx, "cancelled",
				attribute.String("event", def.Name()),
				attribute.Int("handlers_invoked", invoked),
			)
			break
		}
	}

	observability.LogDispatch(w.logger, def.Name(), invoked, cancellation.Cancelled(), done())
	w.metrics.RecordDispatch(ctx, def.Name(), invoked, cancellation.Cancelled(), time.Since(start))
	w.spans.EndSpanWithError(span, nil)

	return cancellation
}

// invokeOne runs a single handler under its guard.
//
// The guard is held only for the invocation itself, never across the command
// barrier, so a deferred command may safely dispatch back into the same
// handler.
func invokeOne[E any, C event.Cancellation, A any](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, A],
	g *registry.Guarded[Handler[E, C, A]],
	evt *E,
	cancellation *C,
	audience A,
) {
	h := g.Lock()
	defer g.Unlock()

	rcv := event.NewReceive(ctx, def, evt, cancellation, audience)
	start := time.Now()

	if w.cfg.PanicPolicy == config.PanicRecover {
		func() {
			defer func() {
				if recovered := recover(); recovered != nil {
					observability.LogHandlerPanic(w.logger, def.Name(), handlerName(h), recovered)
				}
			}()
			h.Handle(rcv, w)
		}()
	} else {
		h.Handle(rcv, w)
	}

	w.metrics.RecordHandler(ctx, def.Name(), handlerName(h), time.Since(start))
}

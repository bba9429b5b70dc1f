package eventkit

import (
	"context"

	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
)

// Tick is the event posted once per iteration of the host's update loop.
// It is an ordinary event kind: immutable, never cancellable, no audience.
type Tick struct{}

// TickEvent is the definition of the Tick kind.
var TickEvent = event.Define[Tick, event.Unit, event.None]("tick")

// OnTick registers a plain function to run every tick. It is a convenience
// over On for handlers that need nothing from the Receive.
func OnTick(w *World, fn func(w *World), opts ...HandlerOption) {
	On(w, TickEvent, func(_ *event.Receive[Tick, event.Unit, event.None], w *World) {
		fn(w)
	}, opts...)
}

// Tick posts a Tick event and then flushes the deferred command queue, so
// commands queued outside any dispatch are applied even when no tick
// handlers are registered.
func (w *World) Tick(ctx context.Context) {
	Post(ctx, w, TickEvent, Tick{})
	w.Flush()
}

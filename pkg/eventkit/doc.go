// Package eventkit is a typed, in-process event bus with deterministic
// priority ordering, cooperative cancellation, and addressee annotations.
//
// # Overview
//
// Independently-authored handlers subscribe to strongly-typed event kinds and
// are invoked strictly sequentially, from highest priority to lowest, ties
// broken by registration order. A handler may mutate the event (if its kind
// allows it), cancel it (halting the remaining chain), and read the audience
// the dispatch declared. One generic dispatch algorithm serves every
// combination of the three axes; see the event package for the configuration
// contract.
//
// # World
//
// A World is the explicit shared-state container everything runs against: it
// owns the per-kind handler registries, a typed resource map for handler
// state, and the deferred command queue. There are no package-level mutable
// globals; create a World and pass it around.
//
//	w := eventkit.New()
//
//	type Damage struct{ Amount int }
//	var DamageEvent = event.Define[Damage, event.Flag, event.None]("entity.damage")
//
//	eventkit.On(w, DamageEvent, func(rcv *event.Receive[Damage, event.Flag, event.None], w *eventkit.World) {
//	    if rcv.Event().Amount <= 0 {
//	        rcv.Cancel()
//	    }
//	})
//
//	cancelled := eventkit.Post(ctx, w, DamageEvent, Damage{Amount: 12})
//
// # Dispatch shapes
//
// Post consumes the event by value. PostRef borrows an immutable event;
// PostMut borrows a mutable one, and the caller observes in-place edits when
// it returns. All three return the dispatch's final cancellation state.
// Dispatching a kind nobody listens to is not an error: it returns the
// default, not-cancelled state.
//
// # Deferred commands
//
// A handler must not synchronously re-enter the registry it is being invoked
// from. Instead it queues commands — QueuePost, QueueAddHandler, or any
// Command via World.Defer — which the World applies in FIFO order at the next
// barrier: after the current handler invocation returns, before the next
// handler of the same dispatch runs. Hosts driving the World directly can
// drain the queue with Flush.
//
// # Concurrency
//
// Handlers for one dispatch never run concurrently with each other; order is
// a correctness contract, not an implementation detail. Registries may be
// read by one dispatch while another goroutine registers, and each handler
// sits behind its own lock so two dispatches can never invoke it at the same
// instant. There is no timeout: a dispatch runs until its chain is cancelled
// or exhausted.
package eventkit

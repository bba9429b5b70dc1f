package event

import "context"

// Receive is the view handed to a handler for one invocation.
//
// It exposes the event honoring the kind's mutability, the dispatch's shared
// cancellation state, and a read-only view of the audience. A Receive is
// valid only for the duration of the invocation it was built for; handlers
// must not retain it.
type Receive[E any, C Cancellation, A any] struct {
	ctx      context.Context
	def      *Definition[E, C, A]
	event    *E
	cancel   *C
	audience A
}

// NewReceive builds the view for one handler invocation.
// It is called by the dispatch engine; handlers never construct a Receive.
func NewReceive[E any, C Cancellation, A any](
	ctx context.Context,
	def *Definition[E, C, A],
	evt *E,
	cancel *C,
	audience A,
) *Receive[E, C, A] {
	return &Receive[E, C, A]{
		ctx:      ctx,
		def:      def,
		event:    evt,
		cancel:   cancel,
		audience: audience,
	}
}

// Context returns the context the dispatch was started with.
//
// It carries telemetry and request-scoped values only. The dispatch engine
// never consults it for cancellation: a handler chain stops through the
// event's cancellation state, not through the context.
func (r *Receive[E, C, A]) Context() context.Context {
	return r.ctx
}

// Definition returns the definition of the event kind being received.
func (r *Receive[E, C, A]) Definition() *Definition[E, C, A] {
	return r.def
}

// Event returns the current value of the event.
//
// The returned copy reflects in-place edits made by earlier handlers of the
// same dispatch.
func (r *Receive[E, C, A]) Event() E {
	return *r.event
}

// EventMut returns the live event for in-place modification. Edits are seen
// by later handlers of the same dispatch and, for PostMut dispatches, by the
// caller.
//
// Panics with a *ContractError if the kind is not mutable.
func (r *Receive[E, C, A]) EventMut() *E {
	if !r.def.mutable {
		panic(&ContractError{
			Event:  r.def.name,
			Op:     "EventMut",
			Reason: "event kind is immutable",
		})
	}
	return r.event
}

// Cancelled returns true if the event has been cancelled.
// Always false for kinds whose cancellation state is Unit.
func (r *Receive[E, C, A]) Cancelled() bool {
	return (*r.cancel).Cancelled()
}

// Cancel stops the event from being processed further: the dispatch loop
// invokes no handler after the current one returns.
//
// Panics with a *ContractError if the cancellation state is not Cancellable.
func (r *Receive[E, C, A]) Cancel() {
	c, ok := any(r.cancel).(Cancellable)
	if !ok {
		panic(&ContractError{
			Event:  r.def.name,
			Op:     "Cancel",
			Reason: "cancellation state does not support Cancel",
		})
	}
	c.Cancel()
}

// CancelWith stops the event from being processed further, recording value
// on the cancellation state returned to the dispatching caller.
//
// Panics with a *ContractError if the cancellation state is not
// CancellableWith[T].
func CancelWith[E any, C Cancellation, A any, T any](r *Receive[E, C, A], value T) {
	c, ok := any(r.cancel).(CancellableWith[T])
	if !ok {
		panic(&ContractError{
			Event:  r.def.name,
			Op:     "CancelWith",
			Reason: "cancellation state does not support CancelWith for this payload type",
		})
	}
	c.CancelWith(value)
}

// Audience returns the audience the event was dispatched with.
func (r *Receive[E, C, A]) Audience() A {
	return r.audience
}

// Target returns the single addressee of the event.
//
// Panics with a *ContractError if the audience type is not Unicast.
func (r *Receive[E, C, A]) Target() Ref {
	a, ok := any(r.audience).(Unicast)
	if !ok {
		panic(&ContractError{
			Event:  r.def.name,
			Op:     "Target",
			Reason: "audience does not support a single target",
		})
	}
	return a.Target()
}

// Targets returns the addressees of the event, in order.
//
// Panics with a *ContractError if the audience type is not Multicast.
func (r *Receive[E, C, A]) Targets() []Ref {
	a, ok := any(r.audience).(Multicast)
	if !ok {
		panic(&ContractError{
			Event:  r.def.name,
			Op:     "Targets",
			Reason: "audience does not support multiple targets",
		})
	}
	return a.Targets()
}

// Package event defines the configuration contract for eventkit events.
//
// # Overview
//
// An event kind is described by a Definition, which fixes three independent
// axes of behavior at definition time:
//
//   - Mutability: whether handlers may edit the event in place
//   - Cancellation: the state type that can halt remaining handlers
//   - Audience: who the event addresses
//
// The three axes combine freely, so a single dispatch algorithm in the
// eventkit package serves every combination without per-combination code.
//
// # Definitions
//
// A Definition is a type-level key. Create one per event kind, typically as a
// package-level variable, and pass it to every registration and dispatch:
//
//	type Damage struct {
//	    Amount int
//	}
//
//	var DamageEvent = event.Define[Damage, event.Flag, event.Ref](
//	    "entity.damage",
//	    event.WithMutable(),
//	)
//
// The payload type, cancellation type, and audience type are part of the
// definition's identity and never change afterward.
//
// # Cancellation
//
// Three cancellation states are provided:
//
//   - Unit: never cancellable
//   - Flag: a boolean; Cancel sets it
//   - Reason[T]: an optional payload; CancelWith stores the reason
//
// Custom states work too: implement Cancellation, and optionally Cancellable
// and CancellableWith to expose the cancel operations.
//
// # Audience
//
// Audiences annotate who an event is meant for. They never filter delivery:
// every registered handler still runs. Provided audiences are None (unit),
// Ref (single addressee), and Refs (ordered addressee list).
//
// # Receive
//
// Handlers are invoked with a Receive, a per-invocation view of the event,
// its cancellation state, and its audience. Operations a kind does not
// support (EventMut on an immutable kind, Cancel on a Unit kind, Target on a
// None audience) panic with a *ContractError rather than silently doing
// nothing.
package event

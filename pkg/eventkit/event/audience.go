package event

import "github.com/google/uuid"

// None is the audience for events that address no one.
type None struct{}

// Ref is an opaque handle identifying a single addressee known to the host.
type Ref struct {
	id uuid.UUID
}

// NewRef mints a new addressee handle.
func NewRef() Ref {
	return Ref{id: uuid.New()}
}

// IsZero reports whether the handle has not been minted.
func (r Ref) IsZero() bool {
	return r.id == uuid.UUID{}
}

// String returns the handle's identifier.
func (r Ref) String() string {
	return r.id.String()
}

// Target returns the handle itself, making Ref a Unicast audience.
func (r Ref) Target() Ref {
	return r
}

// Refs is an ordered list of addressees, a Multicast audience.
type Refs []Ref

// Targets returns the addressees in declaration order.
// The returned slice is a copy; handlers cannot perturb the audience.
func (rs Refs) Targets() []Ref {
	out := make([]Ref, len(rs))
	copy(out, rs)
	return out
}

// Target returns the first addressee.
// Panics with a *ContractError if the list is empty.
func (rs Refs) Target() Ref {
	if len(rs) == 0 {
		panic(&ContractError{
			Op:     "Target",
			Reason: "audience Refs is empty",
		})
	}
	return rs[0]
}

// Unicast is the capability of an audience that addresses a single target.
type Unicast interface {
	// Target returns the addressee of the event.
	Target() Ref
}

// Multicast is the capability of an audience that addresses multiple targets.
type Multicast interface {
	// Targets returns the addressees of the event, in order.
	Targets() []Ref
}

// Compile-time capability checks.
var (
	_ Unicast   = Ref{}
	_ Unicast   = Refs{}
	_ Multicast = Refs{}
)

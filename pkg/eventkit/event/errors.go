package event

import "fmt"

// ContractError reports use of a capability the event kind's configuration
// does not support: mutating an immutable kind, cancelling an uncancellable
// kind, or reading targets from an audience without them.
//
// These are programming errors, not runtime conditions, so the accessors on
// Receive panic with a *ContractError instead of returning one. Go cannot
// express the per-kind capability constraints in the type system the way an
// associated-type contract would, so the boundary fails fast and loudly
// rather than silently no-opping.
type ContractError struct {
	Event  string // Event kind name, if known
	Op     string // Operation that violated the contract
	Reason string // What the configuration does not support
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	if e.Event != "" {
		return fmt.Sprintf("event %s: %s: %s", e.Event, e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

package event

// Cancellation is the state threaded through one dispatch that reports
// whether remaining handlers should still run.
//
// A fresh zero value is created at the start of every dispatch, shared
// mutably with each handler via Receive, and returned to the caller when the
// dispatch ends. The zero value must mean "not cancelled".
type Cancellation interface {
	// Cancelled returns true if the event has been cancelled.
	Cancelled() bool
}

// Cancellable is the capability to cancel an event without a payload.
// Implement it on a pointer receiver so the shared per-dispatch state is the
// value that changes.
type Cancellable interface {
	// Cancel marks the event as cancelled.
	Cancel()
}

// CancellableWith is the capability to cancel an event with a payload.
type CancellableWith[T any] interface {
	// CancelWith marks the event as cancelled, recording value.
	CancelWith(value T)
}

// Unit is the cancellation state for kinds that can never be cancelled.
// Cancelled always reports false; Unit has no cancel operations.
type Unit struct{}

// Cancelled always returns false.
func (Unit) Cancelled() bool {
	return false
}

// Flag is a boolean cancellation state.
type Flag bool

// Compile-time capability checks.
var (
	_ Cancellation          = Flag(false)
	_ Cancellable           = (*Flag)(nil)
	_ CancellableWith[bool] = (*Flag)(nil)
)

// Cancelled returns true once the flag has been set.
func (f Flag) Cancelled() bool {
	return bool(f)
}

// Cancel sets the flag.
func (f *Flag) Cancel() {
	*f = true
}

// CancelWith ORs value into the flag; a cancelled event stays cancelled.
func (f *Flag) CancelWith(value bool) {
	*f = Flag(value) || *f
}

// Reason is a cancellation state carrying an optional payload.
// The event is cancelled exactly when a payload is present.
type Reason[T any] struct {
	value *T
}

// Cancelled returns true once a payload has been stored.
func (r Reason[T]) Cancelled() bool {
	return r.value != nil
}

// Cancel stores the zero value of T as the payload.
func (r *Reason[T]) Cancel() {
	var zero T
	r.value = &zero
}

// CancelWith stores value as the payload.
func (r *Reason[T]) CancelWith(value T) {
	r.value = &value
}

// Value returns the stored payload, if any.
// Callers inspect it on the state returned by a dispatch.
func (r Reason[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

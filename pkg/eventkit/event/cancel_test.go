package event_test

import (
	"testing"

	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
)

func TestUnit(t *testing.T) {
	var u event.Unit

	if u.Cancelled() {
		t.Error("Unit must never report cancelled")
	}

	if _, ok := any(&u).(event.Cancellable); ok {
		t.Error("Unit must not be Cancellable")
	}
}

func TestFlag(t *testing.T) {
	var f event.Flag

	if f.Cancelled() {
		t.Error("zero Flag must not be cancelled")
	}

	f.Cancel()
	if !f.Cancelled() {
		t.Error("expected Cancel to set the flag")
	}
}

func TestFlagCancelWith(t *testing.T) {
	var f event.Flag

	f.CancelWith(false)
	if f.Cancelled() {
		t.Error("CancelWith(false) on a clean flag must not cancel")
	}

	f.CancelWith(true)
	if !f.Cancelled() {
		t.Error("expected CancelWith(true) to cancel")
	}

	// A cancelled event stays cancelled.
	f.CancelWith(false)
	if !f.Cancelled() {
		t.Error("CancelWith(false) must not clear a cancelled flag")
	}
}

func TestReason(t *testing.T) {
	var r event.Reason[string]

	if r.Cancelled() {
		t.Error("zero Reason must not be cancelled")
	}
	if _, ok := r.Value(); ok {
		t.Error("zero Reason must carry no value")
	}

	r.CancelWith("out of range")
	if !r.Cancelled() {
		t.Error("expected CancelWith to cancel")
	}

	v, ok := r.Value()
	if !ok || v != "out of range" {
		t.Errorf("expected value %q, got %q (ok=%v)", "out of range", v, ok)
	}
}

func TestReasonCancelStoresZero(t *testing.T) {
	var r event.Reason[int]

	r.Cancel()
	if !r.Cancelled() {
		t.Error("expected Cancel to cancel")
	}

	v, ok := r.Value()
	if !ok || v != 0 {
		t.Errorf("expected zero value payload, got %d (ok=%v)", v, ok)
	}
}

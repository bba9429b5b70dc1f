package event_test

import (
	"testing"

	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
)

type payload struct {
	Value int
}

func TestDefine(t *testing.T) {
	def := event.Define[payload, event.Flag, event.None]("test.payload")

	if def.Name() != "test.payload" {
		t.Errorf("expected name %q, got %q", "test.payload", def.Name())
	}
	if def.Mutable() {
		t.Error("expected definitions to be immutable by default")
	}
}

func TestDefineMutable(t *testing.T) {
	def := event.Define[payload, event.Flag, event.None]("test.payload", event.WithMutable())

	if !def.Mutable() {
		t.Error("expected WithMutable to mark the kind mutable")
	}
}

func TestDefinitionIdentity(t *testing.T) {
	// Two definitions with the same name and types are distinct kinds.
	a := event.Define[payload, event.Unit, event.None]("same")
	b := event.Define[payload, event.Unit, event.None]("same")

	if a == b {
		t.Error("expected distinct definitions to have distinct identity")
	}
}

func TestPriorityOrdering(t *testing.T) {
	ordered := []event.Priority{
		event.First,
		event.Early,
		event.Pre,
		event.Normal,
		event.Post,
		event.Late,
		event.Last,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] <= ordered[i] {
			t.Errorf("expected %s > %s", ordered[i-1], ordered[i])
		}
	}
}

func TestPriorityString(t *testing.T) {
	cases := map[event.Priority]string{
		event.First:  "first",
		event.Normal: "normal",
		event.Last:   "last",
		42:           "42",
		-7:           "-7",
	}

	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("Priority(%d).String() = %q, want %q", int32(p), got, want)
		}
	}
}

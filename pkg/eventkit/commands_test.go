package eventkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/eventkit/pkg/eventkit"
	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
)

type ping struct{}

type pong struct{}

// counter numbers handler invocations across nested dispatches.
type counter struct {
	Next int
	Seen map[string]int
}

func stamp(w *eventkit.World, name string) {
	c := eventkit.Resource[counter](w)
	if c.Seen == nil {
		c.Seen = make(map[string]int)
	}
	c.Seen[name] = c.Next
	c.Next++
}

func TestDeferredPostRunsBetweenHandlers(t *testing.T) {
	w := eventkit.New()
	pingDef := event.Define[ping, event.Unit, event.None]("ping")
	pongDef := event.Define[pong, event.Unit, event.None]("pong")

	eventkit.On(w, pongDef, func(_ *event.Receive[pong, event.Unit, event.None], w *eventkit.World) {
		stamp(w, "pong")
	})

	eventkit.On(w, pingDef, func(rcv *event.Receive[ping, event.Unit, event.None], w *eventkit.World) {
		stamp(w, "ping-first")
		eventkit.QueuePost(rcv.Context(), w, pongDef, pong{})
	}, eventkit.WithPriority(event.First))

	eventkit.On(w, pingDef, func(_ *event.Receive[ping, event.Unit, event.None], w *eventkit.World) {
		stamp(w, "ping-last")
	}, eventkit.WithPriority(event.Last))

	eventkit.Post(context.Background(), w, pingDef, ping{})

	// The queued pong dispatch applies at the barrier after ping-first, so
	// its handler runs before ping-last.
	c := eventkit.Resource[counter](w)
	assert.Equal(t, 0, c.Seen["ping-first"])
	assert.Equal(t, 1, c.Seen["pong"])
	assert.Equal(t, 2, c.Seen["ping-last"])
}

func TestDeferredPostOutsideDispatch(t *testing.T) {
	w := eventkit.New()
	def := event.Define[ping, event.Unit, event.None]("ping")

	var runs int
	eventkit.On(w, def, func(_ *event.Receive[ping, event.Unit, event.None], _ *eventkit.World) {
		runs++
	})

	eventkit.QueuePost(context.Background(), w, def, ping{})
	assert.Equal(t, 0, runs, "queued dispatch must wait for a barrier")

	w.Flush()
	assert.Equal(t, 1, runs)

	w.Flush()
	assert.Equal(t, 1, runs, "commands apply exactly once")
}

func TestFlushFIFO(t *testing.T) {
	w := eventkit.New()

	var got []int
	for i := range 5 {
		i := i
		w.Defer(eventkit.CommandFunc(func(_ *eventkit.World) {
			got = append(got, i)
		}))
	}

	w.Flush()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestFlushAppliesCommandsQueuedWhileFlushing(t *testing.T) {
	w := eventkit.New()

	var got []string
	w.Defer(eventkit.CommandFunc(func(w *eventkit.World) {
		got = append(got, "outer")
		w.Defer(eventkit.CommandFunc(func(_ *eventkit.World) {
			got = append(got, "inner")
		}))
	}))

	w.Flush()
	assert.Equal(t, []string{"outer", "inner"}, got)
}

func TestQueueAddHandlerInitializeRunsAtApply(t *testing.T) {
	w := eventkit.New()
	def := event.Define[ping, event.Unit, event.None]("ping")

	h := &initTracking{}
	eventkit.QueueAddHandler(w, def, h)
	assert.False(t, h.initialized, "Initialize must wait for the barrier")

	w.Flush()
	assert.True(t, h.initialized)

	eventkit.Post(context.Background(), w, def, ping{})
	assert.Equal(t, 1, h.handled)
}

func TestQueueOn(t *testing.T) {
	w := eventkit.New()
	def := event.Define[ping, event.Unit, event.None]("ping")

	var runs int
	eventkit.QueueOn(w, def, func(_ *event.Receive[ping, event.Unit, event.None], _ *eventkit.World) {
		runs++
	})

	eventkit.Post(context.Background(), w, def, ping{})
	assert.Equal(t, 0, runs, "registration must wait for a barrier")

	w.Flush()
	eventkit.Post(context.Background(), w, def, ping{})
	assert.Equal(t, 1, runs)
}

func TestQueuePostTo(t *testing.T) {
	w := eventkit.New()
	def := event.Define[ping, event.Unit, event.Ref]("ping")
	target := event.NewRef()

	var got event.Ref
	eventkit.On(w, def, func(rcv *event.Receive[ping, event.Unit, event.Ref], _ *eventkit.World) {
		got = rcv.Target()
	})

	eventkit.QueuePostTo(context.Background(), w, def, ping{}, target)
	w.Flush()

	assert.Equal(t, target, got)
}

// initTracking records lifecycle calls for registration tests.
type initTracking struct {
	initialized bool
	handled     int
}

func (h *initTracking) Initialize(_ *eventkit.World) {
	h.initialized = true
}

func (h *initTracking) Handle(_ *event.Receive[ping, event.Unit, event.None], _ *eventkit.World) {
	h.handled++
}

package eventkit

import (
	"context"
	"sync"

	"github.com/randalmurphal/eventkit/pkg/eventkit/event"
	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
)

// Command is an operation applied against the World at a synchronization
// barrier instead of immediately.
//
// Commands are the supported way for a running handler to request new
// registrations or new dispatches: applying them at the barrier keeps the
// registry from being re-entered mid-iteration.
type Command interface {
	// Apply executes the command against the World.
	Apply(w *World)
}

// CommandFunc adapts a function to the Command interface.
type CommandFunc func(w *World)

// Apply implements Command.
func (f CommandFunc) Apply(w *World) {
	f(w)
}

// commandQueue is a FIFO of deferred commands.
type commandQueue struct {
	mu   sync.Mutex
	cmds []Command
}

func (q *commandQueue) grow(capacity int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if cap(q.cmds) < capacity {
		next := make([]Command, len(q.cmds), capacity)
		copy(next, q.cmds)
		q.cmds = next
	}
}

func (q *commandQueue) push(cmd Command) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.cmds = append(q.cmds, cmd)
}

func (q *commandQueue) pop() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.cmds) == 0 {
		return nil, false
	}
	cmd := q.cmds[0]
	q.cmds = q.cmds[1:]
	return cmd, true
}

// Defer queues cmd for application at the next barrier.
//
// Barriers occur after every handler invocation within a dispatch, and
// whenever the host calls Flush. Each queued command is applied exactly
// once, in FIFO order.
func (w *World) Defer(cmd Command) {
	w.commands.push(cmd)
	observability.LogDeferred(w.logger, handlerName(cmd))
}

// Flush applies every queued command in FIFO order until the queue is empty.
// Commands queued while flushing — including by dispatches a command
// triggers — are applied in the same pass.
//
// Dispatches flush automatically after each handler; hosts that queue
// commands outside any dispatch call Flush at their own barrier.
func (w *World) Flush() {
	for {
		cmd, ok := w.commands.pop()
		if !ok {
			return
		}
		cmd.Apply(w)
	}
}

// addHandlerCommand defers a registration.
type addHandlerCommand[E any, C event.Cancellation, A any] struct {
	def     *event.Definition[E, C, A]
	handler Handler[E, C, A]
	opts    []HandlerOption
}

// Apply registers the handler.
func (c *addHandlerCommand[E, C, A]) Apply(w *World) {
	AddHandler(w, c.def, c.handler, c.opts...)
}

// QueueAddHandler defers a registration to the next barrier.
//
// The handler's Initialize hook runs when the command is applied, not when
// it is queued. Use this instead of AddHandler from inside a running
// handler.
func QueueAddHandler[E any, C event.Cancellation, A any](
	w *World,
	def *event.Definition[E, C, A],
	h Handler[E, C, A],
	opts ...HandlerOption,
) {
	w.Defer(&addHandlerCommand[E, C, A]{def: def, handler: h, opts: opts})
}

// QueueOn defers registering a plain function to the next barrier.
func QueueOn[E any, C event.Cancellation, A any](
	w *World,
	def *event.Definition[E, C, A],
	fn func(rcv *event.Receive[E, C, A], w *World),
	opts ...HandlerOption,
) {
	QueueAddHandler(w, def, HandlerFunc[E, C, A](fn), opts...)
}

// postCommand defers a by-value dispatch.
type postCommand[E any, C event.Cancellation, A any] struct {
	ctx      context.Context
	def      *event.Definition[E, C, A]
	evt      E
	audience A
}

// Apply runs the dispatch. The cancellation result is discarded: deferred
// dispatch is fire-and-forget.
func (c *postCommand[E, C, A]) Apply(w *World) {
	PostTo(c.ctx, w, c.def, c.evt, c.audience)
}

// QueuePost defers a by-value dispatch to the next barrier.
// Use this instead of Post from inside a running handler.
func QueuePost[E any, C event.Cancellation](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, event.None],
	evt E,
) {
	QueuePostTo(ctx, w, def, evt, event.None{})
}

// QueuePostTo defers a by-value dispatch with an explicit audience.
func QueuePostTo[E any, C event.Cancellation, A any](
	ctx context.Context,
	w *World,
	def *event.Definition[E, C, A],
	evt E,
	audience A,
) {
	w.Defer(&postCommand[E, C, A]{ctx: ctx, def: def, evt: evt, audience: audience})
}

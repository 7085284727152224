package coroutine

import (
	"fmt"
	"io"
	"os"
)

type status uint8

const (
	statusCreated status = iota
	statusRunning
	statusFinished
	statusUnwinding
)

// unwindSentinel is raised inside a coroutine body to unwind its
// stack during Cancel. The type is unexported so no user payload can
// impersonate it; the trampoline swallows it without diagnostics.
type unwindSentinel struct{}

func isUnwind(v any) bool {
	_, ok := v.(unwindSentinel)
	return ok
}

// stderr receives the one-line diagnostic emitted when a coroutine
// body panics.
var stderr io.Writer = os.Stderr

// coro is the coroutine record. It is heap-allocated behind the
// handle and never moves after Spawn: the body's Yielder points back
// into it across switches. Exactly one of parent/child is executing
// at any instant; the other is a suspended snapshot.
//
// status only ever advances: Created, then Running on first entry,
// then Finished (possibly via Unwinding while Cancel runs its dance).
// There is no way back out of Finished.
type coro[T any] struct {
	parent   mcontext
	child    mcontext
	stack    *execStack
	name     string
	status   status
	slot     slot[T]
	body     func(*Yielder[T])
	panicked bool
}

// Spawn creates a coroutine that will execute body on its own stack
// and returns the handle that controls it. The body does not run
// until the first Resume.
//
// The body receives a Yielder whose Yield and Suspend methods hand
// control back to the resumer. It may suspend from any call depth.
// body is consumed by the first resume; until then the handle owns
// it, so a handle canceled before ever resuming simply discards the
// body without running it.
func Spawn[T any](body func(*Yielder[T])) *Handle[T] {
	return SpawnWithOptions(body)
}

// SpawnWithOptions is Spawn with configuration: WithStackSize sets
// the stack reservation (default DefaultStackSize) and WithName
// attaches a label used in panic diagnostics.
func SpawnWithOptions[T any](body func(*Yielder[T]), opts ...Option) *Handle[T] {
	o := resolveOptions(opts...)
	size := o.stackSize
	if size <= 0 {
		size = DefaultStackSize
	}
	c := &coro[T]{
		name:  o.name,
		body:  body,
		stack: stacks.take(size),
	}
	c.parent = emptyContext()
	c.child = initContext(c.stack, c.run)
	return &Handle[T]{co: c}
}

// run is the entry trampoline. It executes on the coroutine's stack,
// consumes the body, and contains any unwind: a normal return, the
// cancel sentinel, and a user panic all end here with the record
// marked Finished before control switches back for the last time.
// Nothing ever propagates across the switch into the parent.
func (c *coro[T]) run() {
	body := c.body
	c.body = nil
	c.status = statusRunning

	defer func() {
		r := recover()
		switch {
		case r == nil, isUnwind(r):
			c.slot.clear()
		default:
			c.panicked = true
			c.slot.fail(newPanicError(r))
			fmt.Fprintf(stderr, "Coroutine '%s' panicked at '%v'\n", c.label(), r)
		}
		c.status = statusFinished
	}()

	body(&Yielder[T]{co: c})
}

// resume switches into the coroutine, optionally delivering in, and
// reports what the coroutine left in the slot when control came back:
// a yielded value, nothing, or the panic that ended it.
func (c *coro[T]) resume(in T, send bool) (T, bool, error) {
	var zero T
	switch c.status {
	case statusFinished:
		if c.panicked {
			return zero, false, ErrPanicked
		}
		return zero, false, nil
	case statusUnwinding:
		return zero, false, nil
	}
	if send {
		c.slot.put(in)
	} else {
		c.slot.clear()
	}
	swapContext(&c.parent, &c.child)
	return c.slot.take()
}

// yield switches out of the coroutine, optionally delivering out, and
// returns the value the next resume supplied. The status check after
// regaining control is what lets Cancel ask a live coroutine to die:
// Unwinding means the switch-in came from the cancel path, so raise
// the sentinel instead of returning into the body.
func (c *coro[T]) yield(out T, send bool) (T, bool) {
	switch c.status {
	case statusUnwinding:
		panic(unwindSentinel{})
	case statusCreated, statusFinished:
		panic(ErrCompleted)
	}
	if send {
		c.slot.put(out)
	} else {
		c.slot.clear()
	}
	swapContext(&c.child, &c.parent)
	if c.status == statusUnwinding {
		panic(unwindSentinel{})
	}
	v, ok, _ := c.slot.take()
	return v, ok
}

// cancel terminates the coroutine and reclaims its stack. Suspended
// coroutines are switched in one last time so the sentinel unwinds
// the body and its defers run on the coroutine's own stack; cancel
// does not return until the coroutine has finished. Idempotent.
func (c *coro[T]) cancel() {
	switch c.status {
	case statusCreated:
		c.body = nil
		c.status = statusFinished
		c.finalize()
	case statusRunning:
		c.status = statusUnwinding
		swapContext(&c.parent, &c.child)
		c.finalize()
	case statusFinished:
		c.finalize()
	}
}

func (c *coro[T]) finalize() {
	if c.stack == nil {
		return
	}
	stacks.give(c.stack)
	c.stack = nil
	c.child = emptyContext()
}

func (c *coro[T]) label() string {
	if c.name == "" {
		return "<unnamed>"
	}
	return c.name
}

// Package coroutine provides stackful, symmetric coroutines for Go:
// first-class execution contexts that cooperatively suspend and
// resume, exchanging a single typed value with their caller on every
// switch. A coroutine runs on its own pooled execution stack and may
// suspend from arbitrary call depth, not only at a top-level yield
// point.
//
// A coroutine is created with Spawn (or SpawnWithOptions), which
// returns a Handle. The handle's Resume and ResumeWith methods
// transfer control into the coroutine and return the value it yields;
// inside the body, the Yielder's Yield and Suspend methods transfer
// control back out and return the value the next resume supplies.
//
// Panics inside a coroutine body never unwind the caller. They are
// caught at the coroutine's entry point, reported once on standard
// error, and surfaced as an error from the resume that observed them;
// every later resume reports ErrPanicked.
//
// Cancel terminates a live coroutine deterministically: the body is
// unwound at its current suspension point so that its deferred
// functions run on the coroutine's own stack, and the stack is
// returned to the pool for reuse. Call Cancel when done with a
// handle, typically via defer; further calls have no effect.
//
// A coroutine belongs to one goroutine at a time. A suspended
// coroutine may be handed to another goroutine under exclusive
// ownership, but two goroutines must never race on the same handle.
package coroutine

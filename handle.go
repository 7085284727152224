package coroutine

import "iter"

// Handle is the owning side of a coroutine. The creator resumes
// through it and must Cancel it when done; Cancel after normal
// completion just returns the stack to the pool.
//
// A handle is not safe for concurrent use. It may be handed to
// another goroutine only while the coroutine is suspended.
type Handle[T any] struct {
	co *coro[T]
}

// Resume transfers control into the coroutine without supplying a
// value and returns when it next suspends or finishes.
//
// It returns (v, true, nil) when the coroutine yielded v, and
// (zero, false, nil) when it suspended without a value or has
// finished normally — including every call after normal completion.
// The resume that observes a body panic returns a *PanicError
// carrying the payload and the coroutine's stack; every resume after
// that returns ErrPanicked.
func (h *Handle[T]) Resume() (T, bool, error) {
	var zero T
	return h.co.resume(zero, false)
}

// ResumeWith is Resume with a value: v is delivered as the result of
// the Yield or Suspend call the coroutine is parked in.
func (h *Handle[T]) ResumeWith(v T) (T, bool, error) {
	return h.co.resume(v, true)
}

// Cancel terminates the coroutine and returns its stack to the pool.
// A suspended coroutine is unwound at its suspension point, running
// its deferred functions on its own stack; Cancel does not return
// until the coroutine has finished. A coroutine that never ran is
// discarded without running. Cancel is idempotent.
func (h *Handle[T]) Cancel() {
	h.co.cancel()
}

// Name returns the label given at spawn, or "" if none was.
func (h *Handle[T]) Name() string {
	return h.co.name
}

// Done reports whether the coroutine has terminated, by returning,
// panicking, or being canceled.
func (h *Handle[T]) Done() bool {
	return h.co.status == statusFinished || h.co.status == statusUnwinding
}

// All returns the coroutine's yielded values as a lazy sequence. Each
// step resumes the coroutine without a value: a yielded value is
// produced as (v, nil), a body panic as (zero, err) after which the
// sequence ends, and a suspension without a value or normal
// completion ends it silently. The sequence is single-consumer and
// does not restart: once the coroutine is finished, iteration
// terminates immediately.
func (h *Handle[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			if h.co.status == statusFinished || h.co.status == statusUnwinding {
				return
			}
			v, ok, err := h.Resume()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Yielder is the coroutine's own reference back into its record,
// handed to the body at first entry. It is valid exactly as long as
// the owning handle lives and must only be used from the coroutine it
// belongs to.
type Yielder[T any] struct {
	co *coro[T]
}

// Yield delivers v to the resumer and suspends. It returns the value
// the next ResumeWith supplies, or (zero, false) for a plain Resume.
// Yield on a completed coroutine panics with ErrCompleted.
func (y *Yielder[T]) Yield(v T) (T, bool) {
	return y.co.yield(v, true)
}

// Suspend suspends without delivering a value. Like Yield, it returns
// whatever the next resume supplies.
func (y *Yielder[T]) Suspend() (T, bool) {
	var zero T
	return y.co.yield(zero, false)
}

// Name returns the label given at spawn, or "" if none was.
func (y *Yielder[T]) Name() string {
	return y.co.name
}

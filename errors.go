package coroutine

import "errors"

var (
	// ErrPanicked is returned by every resume after the one that
	// reported the coroutine's panic. The coroutine is dead; the
	// original payload was surfaced exactly once.
	ErrPanicked = errors.New("coroutine: coroutine panicked")

	// ErrCompleted is the panic raised when an escaped Yielder is
	// used after its coroutine has completed or been canceled.
	ErrCompleted = errors.New("coroutine: coroutine already completed")
)

package coroutine

import (
	"fmt"
	"runtime/debug"
)

// PanicError is the error returned by the resume that observes a
// coroutine body panicking. It carries the recovered payload and the
// coroutine-side stack captured at the point of recovery, which is
// otherwise gone by the time the resumer sees the failure.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) error {
	return &PanicError{
		value: v,
		stack: debug.Stack(),
	}
}

// Error returns the payload message alone, so callers see the
// original panic text.
func (p *PanicError) Error() string {
	return fmt.Sprintf("%v", p.value)
}

// Unwrap exposes the payload when it was an error, keeping errors.Is
// and errors.As working across the containment boundary.
func (p *PanicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}

// Value returns the recovered panic payload.
func (p *PanicError) Value() any {
	return p.value
}

// Stack returns the coroutine's stack at the point of the panic.
func (p *PanicError) Stack() []byte {
	return p.stack
}

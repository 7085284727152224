//go:build !purego

package coroutine

import (
	"unsafe"
)

var _ unsafe.Pointer

// rtcoro represents a native Go runtime coroutine instance. It's an
// opaque struct used by the runtime functions.
type rtcoro struct{}

//go:linkname newcoro runtime.newcoro
func newcoro(func(*rtcoro)) *rtcoro

//go:linkname coroswitch runtime.coroswitch
func coroswitch(*rtcoro)

// execStack is an execution stack backed by a runtime coroutine. The
// coroutine runs a dispatch loop: switched in with an entry function
// pending, it runs the entry to completion and then parks, ready for
// the next dispatch. A switch-in with no entry pending terminates the
// loop and retires the underlying coroutine.
//
// The runtime grows and guards the stack itself; size records the
// requested reservation and keys the pool cache.
type execStack struct {
	size  int
	entry func()
	c     *rtcoro
}

func newExecStack(size int) *execStack {
	s := &execStack{size: size}
	s.c = newcoro(func(c *rtcoro) {
		for {
			entry := s.entry
			if entry == nil {
				return
			}
			s.entry = nil
			entry()
			coroswitch(c)
		}
	})
	return s
}

// switchIn transfers control from the caller into the stack's
// suspended execution. It returns when that execution switches out or
// its current entry completes.
func (s *execStack) switchIn() {
	coroswitch(s.c)
}

// switchOut transfers control from the stack's execution back to
// whoever last switched in. Must be called on the stack itself.
func (s *execStack) switchOut() {
	coroswitch(s.c)
}

// destroy retires the stack. It must not be executing.
func (s *execStack) destroy() {
	s.entry = nil
	coroswitch(s.c)
}

package coroutine

// mcontext is one side of a context switch pair. The side that owns
// an execution stack is the coroutine; the side with no stack is the
// parent, whose state the switch primitive saves and restores
// implicitly. An empty context is valid only as the parent side of a
// swap.
type mcontext struct {
	stack *execStack
}

// emptyContext returns a zeroed snapshot suitable only as a swap
// destination for the parent side.
func emptyContext() mcontext {
	return mcontext{}
}

// initContext lays an entry function on stack so that the first
// switch into the returned context runs entry with a fresh frame. The
// entry is not executed until that first switch.
func initContext(stack *execStack, entry func()) mcontext {
	stack.entry = entry
	return mcontext{stack: stack}
}

// swapContext suspends from and resumes to. Exactly one of the two
// contexts carries a stack; its switch primitive determines the
// direction. No allocation, no syscall.
func swapContext(from, to *mcontext) {
	switch {
	case to.stack != nil:
		to.stack.switchIn()
	case from.stack != nil:
		from.stack.switchOut()
	}
}

package coroutine

import (
	"slices"
	"testing"
)

func TestAllValues(t *testing.T) {
	h := Spawn(func(y *Yielder[int]) {
		for i := 0; i < 5; i++ {
			y.Yield(i)
		}
	})
	defer h.Cancel()

	var got []int
	for v, err := range h.All() {
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Expected [0 1 2 3 4], got %v", got)
	}
	if !h.Done() {
		t.Error("Expected coroutine to be done after iteration")
	}
}

func TestAllEarlyBreakLeavesSuspended(t *testing.T) {
	h := Spawn(func(y *Yielder[int]) {
		for i := 0; i < 5; i++ {
			y.Yield(i)
		}
	})
	defer h.Cancel()

	var got []int
	for v, err := range h.All() {
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if h.Done() {
		t.Error("Breaking out must leave the coroutine suspended")
	}

	// The single consumer may pick the sequence back up.
	for v, err := range h.All() {
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Expected [0 1 2 3 4], got %v", got)
	}
}

func TestAllSurfacesPanicOnce(t *testing.T) {
	silenceDiagnostics(t)

	h := Spawn(func(y *Yielder[int]) {
		y.Yield(1)
		panic("mid-iteration")
	})
	defer h.Cancel()

	var (
		got  []int
		errs []error
	)
	for v, err := range h.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1}) {
		t.Errorf("Expected [1], got %v", got)
	}
	if len(errs) != 1 {
		t.Fatalf("Expected exactly one error, got %d", len(errs))
	}
	if errs[0].Error() != "mid-iteration" {
		t.Errorf("Expected payload 'mid-iteration', got '%s'", errs[0].Error())
	}

	// Once terminal, a fresh iteration terminates immediately.
	for v, err := range h.All() {
		t.Errorf("Expected no further steps, got %d, %v", v, err)
	}
}

func TestAllAfterCompletion(t *testing.T) {
	h := Spawn(func(y *Yielder[int]) {
		y.Yield(1)
	})
	defer h.Cancel()

	n := 0
	for range h.All() {
		n++
	}
	if n != 1 {
		t.Fatalf("Expected one step, got %d", n)
	}
	for range h.All() {
		t.Error("Expected terminated sequence to produce nothing")
	}
}

func TestAllEndsOnValuelessSuspension(t *testing.T) {
	h := Spawn(func(y *Yielder[int]) {
		y.Yield(1)
		y.Suspend()
		y.Yield(2)
	})
	defer h.Cancel()

	var got []int
	for v, err := range h.All() {
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1}) {
		t.Errorf("Expected iteration to end at the valueless suspension, got %v", got)
	}
	if h.Done() {
		t.Error("Expected coroutine to still be suspended")
	}
}

func TestAllAfterCancelTerminatesImmediately(t *testing.T) {
	h := Spawn(func(y *Yielder[int]) {
		for {
			y.Yield(1)
		}
	})
	h.Resume()
	h.Cancel()

	for v, err := range h.All() {
		t.Errorf("Expected no steps after cancel, got %d, %v", v, err)
	}
}

package animation

import (
	"testing"
	"time"
)

func TestRegisterAllocatesDistinctTokens(t *testing.T) {
	a := NewAnimator()
	seen := make(map[uint32]bool)
	for range 100 {
		token := a.Register(func() bool { return true })
		if token == 0 {
			t.Fatal("token zero is reserved and must never be allocated")
		}
		if seen[token] {
			t.Fatalf("token %d allocated twice", token)
		}
		seen[token] = true
	}
}

func TestTokenWraparoundSkipsInUse(t *testing.T) {
	a := NewAnimator()
	held := a.Register(func() bool { return true })

	// Force the allocator to wrap. The next allocation must skip zero and
	// the still-registered token.
	a.nextToken = ^uint32(0)
	first := a.Register(func() bool { return true })
	if first == 0 {
		t.Fatal("allocator returned the zero sentinel after wraparound")
	}
	a.nextToken = held - 1
	next := a.Register(func() bool { return true })
	if next == held {
		t.Fatal("allocator reused a token that is still registered")
	}
}

func TestFrameRemovesFinishedCallbacks(t *testing.T) {
	a := NewAnimator()
	calls := 0
	a.Register(func() bool {
		calls++
		return calls < 3
	})

	for range 5 {
		a.Frame()
	}
	if calls != 3 {
		t.Errorf("callback ran %d times, want 3", calls)
	}
	if a.HasCallbacks() {
		t.Error("finished callback was not removed")
	}
}

func TestFrameInvokesEveryCallbackOnce(t *testing.T) {
	a := NewAnimator()
	counts := make(map[int]int)
	for i := range 4 {
		i := i
		a.Register(func() bool {
			counts[i]++
			return true
		})
	}
	a.Frame()
	for i := range 4 {
		if counts[i] != 1 {
			t.Errorf("callback %d ran %d times in one frame, want 1", i, counts[i])
		}
	}
}

func TestUnregisterDuringFrame(t *testing.T) {
	a := NewAnimator()
	var tokens []uint32
	ran := make(map[int]int)
	for i := range 3 {
		i := i
		tokens = append(tokens, a.Register(func() bool {
			ran[i]++
			// Each callback unregisters every other callback. Whichever runs
			// first wins; the rest must not fire afterwards.
			for j, token := range tokens {
				if j != i {
					a.Unregister(token)
				}
			}
			return true
		}))
	}
	a.Frame()

	total := 0
	for _, n := range ran {
		total += n
	}
	if total != 1 {
		t.Errorf("%d callbacks ran, want exactly 1 after mutual unregistration", total)
	}
}

func TestClockInjection(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	prev := SetClock(fixedClock{fixed})
	defer SetClock(prev)

	if !Now().Equal(fixed) {
		t.Errorf("Now() = %v, want %v", Now(), fixed)
	}
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

package event

import (
	"sync"
	"testing"

	"github.com/go-slate/slate/pkg/geometry"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Push(Scroll{Delta: 1})
	q.Push(Scroll{Delta: 2})
	q.Push(Scroll{Delta: 3})

	for want := 1; want <= 3; want++ {
		ev, ok := q.Pop()
		if !ok {
			t.Fatalf("queue empty after %d pops", want-1)
		}
		if got := ev.(Scroll).Delta; got != want {
			t.Errorf("popped delta %d, want %d", got, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("queue should be empty")
	}
}

func TestQueuePushFront(t *testing.T) {
	var q Queue
	q.Push(Scroll{Delta: 1})
	q.Push(Scroll{Delta: 2})
	q.PushFront(Scroll{Delta: 99})

	ev, _ := q.Pop()
	if got := ev.(Scroll).Delta; got != 99 {
		t.Errorf("head event delta = %d, want 99", got)
	}
	ev, _ = q.Pop()
	if got := ev.(Scroll).Delta; got != 1 {
		t.Errorf("next event delta = %d, want 1", got)
	}
}

func TestQueueClear(t *testing.T) {
	var q Queue
	q.Push(Touch{Position: geometry.Point{X: 1, Y: 2}, Down: true})
	q.Push(Button{Kind: ButtonMenu, Down: true})
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", q.Len())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	var q Queue
	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.Push(Scroll{Delta: i})
			}
		}()
	}
	wg.Wait()

	if got := q.Len(); got != producers*perProducer {
		t.Errorf("Len() = %d, want %d", got, producers*perProducer)
	}
}

package render

import (
	"sync"
	"testing"
	"time"
)

func TestQueueTryRecvEmpty(t *testing.T) {
	q := NewQueue[int](4)
	if _, ok := q.TryRecv(); ok {
		t.Fatalf("TryRecv() ok = true, want false")
	}
}

func TestQueueTrySendFull(t *testing.T) {
	q := NewQueue[int](4)
	for i := 0; i < q.Cap(); i++ {
		if !q.TrySend(i) {
			t.Fatalf("TrySend() = false at slot %d, want true", i)
		}
	}
	if q.TrySend(99) {
		t.Fatalf("TrySend() = true when full, want false")
	}
	for i := 0; i < q.Cap(); i++ {
		v, ok := q.TryRecv()
		if !ok || v != i {
			t.Fatalf("TryRecv() = %d, %t, want %d, true", v, ok, i)
		}
	}
}

func TestSendReliableRetiredQueueReturns(t *testing.T) {
	q := NewQueue[int](1)
	q.Retire()

	done := make(chan bool, 1)
	go func() { done <- q.SendReliable(42) }()

	select {
	case delivered := <-done:
		if delivered {
			t.Fatalf("SendReliable() = true on retired queue, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("SendReliable() hung on retired queue")
	}
}

func TestSendReliableSucceedsAfterDrain(t *testing.T) {
	q := NewQueue[int](1)
	if !q.TrySend(1) {
		t.Fatal("TrySend() = false filling queue")
	}

	done := make(chan bool, 1)
	go func() { done <- q.SendReliable(2) }()

	time.Sleep(5 * time.Millisecond)
	if _, ok := q.TryRecv(); !ok {
		t.Fatal("TryRecv() = false, want queued value")
	}

	select {
	case delivered := <-done:
		if !delivered {
			t.Fatalf("SendReliable() = false after drain, want true")
		}
	case <-time.After(time.Second):
		t.Fatal("SendReliable() hung after drain")
	}
	if v, ok := q.TryRecv(); !ok || v != 2 {
		t.Fatalf("TryRecv() = %d, %t, want 2, true", v, ok)
	}
}

func TestQueueRecvUnblocksOnRetire(t *testing.T) {
	q := NewQueue[int](1)

	done := make(chan bool, 1)
	go func() {
		_, ok := q.Recv()
		done <- ok
	}()

	time.Sleep(5 * time.Millisecond)
	q.Retire()

	select {
	case ok := <-done:
		if ok {
			t.Fatalf("Recv() ok = true after retire of empty queue, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("Recv() hung after retire")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	const (
		producers = 4
		perProd   = 5_000
		total     = producers * perProd
	)

	q := NewQueue[int](8)

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			<-start
			for i := 0; i < perProd; i++ {
				if !q.SendReliable(p*perProd + i) {
					t.Errorf("SendReliable() = false mid-run")
					return
				}
			}
		}(p)
	}
	close(start)

	seen := make([]bool, total)
	for i := 0; i < total; i++ {
		v, ok := q.Recv()
		if !ok {
			t.Fatalf("Recv() ok = false after %d values", i)
		}
		if v < 0 || v >= total {
			t.Fatalf("Recv() = %d, want < %d", v, total)
		}
		if seen[v] {
			t.Fatalf("Recv() duplicate value %d", v)
		}
		seen[v] = true
	}

	wg.Wait()
}

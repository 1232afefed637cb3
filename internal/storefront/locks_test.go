package storefront

import (
	"sync"
	"testing"
)

func TestSessionLocksSerializeSameID(t *testing.T) {
	locks := newSessionLocks()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("s1")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 increments, got %d", counter)
	}
	if n := locks.size(); n != 0 {
		t.Fatalf("expected lock table to drain, got %d entries", n)
	}
}

func TestSessionLocksIndependentIDs(t *testing.T) {
	locks := newSessionLocks()
	unlockA := locks.lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.lock("b")
		unlock()
		close(done)
	}()
	<-done

	if n := locks.size(); n != 1 {
		t.Fatalf("expected one held lock, got %d", n)
	}
}

package runner

import (
	"sync"
	"testing"
	"time"
)

func TestMailbox_PreservesOrder(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	m := newMailbox(done)

	const n = 1000
	for i := 0; i < n; i++ {
		m.Send(PlayTrack{Index: i})
	}

	for i := 0; i < n; i++ {
		select {
		case cmd := <-m.Receive():
			got, ok := cmd.(PlayTrack)
			if !ok || got.Index != i {
				t.Fatalf("command %d = %#v, want PlayTrack{%d}", i, cmd, i)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for command %d", i)
		}
	}
}

func TestMailbox_SendNeverBlocks(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	m := newMailbox(done)

	// No receiver at all: every send must still return promptly.
	finished := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			m.Send(Pause{})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Send blocked without a receiver")
	}
}

func TestMailbox_ConcurrentProducers(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	m := newMailbox(done)

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				m.Send(TogglePause{})
			}
		}()
	}
	wg.Wait()

	for i := 0; i < producers*perProducer; i++ {
		select {
		case <-m.Receive():
		case <-time.After(2 * time.Second):
			t.Fatalf("received only %d of %d commands", i, producers*perProducer)
		}
	}
}

func TestMailbox_SendAfterDoneReturns(t *testing.T) {
	done := make(chan struct{})
	m := newMailbox(done)
	close(done)

	finished := make(chan struct{})
	go func() {
		m.Send(Play{})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Send blocked after shutdown")
	}
}

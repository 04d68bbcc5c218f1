package eventbus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Publish(42)
	select {
	case v := <-sub:
		if v != 42 {
			t.Fatalf("expected 42, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatalf("event not delivered")
	}
}

func TestFanOut(t *testing.T) {
	b := New[string]()
	a := b.Subscribe()
	c := b.Subscribe()
	b.Publish("ev")
	for _, sub := range []<-chan string{a, c} {
		select {
		case v := <-sub:
			if v != "ev" {
				t.Fatalf("bad event %q", v)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber missed event")
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Fatalf("channel should be closed")
	}
	b.Publish(1) // must not panic
}

func TestCloseStopsDelivery(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Close()
	if _, ok := <-sub; ok {
		t.Fatalf("channel should be closed")
	}
	b.Publish(1)
	if got := b.Subscribe(); got == nil {
		t.Fatalf("subscribe after close should return a closed channel")
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	b := New[int]()
	_ = b.Subscribe() // never drained
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publisher blocked on slow subscriber")
	}
}

package registry

import (
	"testing"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
	"github.com/rzbill/seisproxy/pkg/handle"
)

func TestSubscribeIsIdempotent(t *testing.T) {
	r := New(4, nil)
	h := handle.Handle(1)

	if err := r.Subscribe(h); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := r.Subscribe(h); err != nil {
		t.Fatalf("second Subscribe should be a no-op, got: %v", err)
	}
	if got := r.Count(); got != 1 {
		t.Fatalf("expected 1 subscriber, got %d", got)
	}
}

func TestUnsubscribeRemovesStream(t *testing.T) {
	r := New(4, nil)
	h := handle.Handle(1)
	_ = r.Subscribe(h)

	r.Unsubscribe(h)
	if got := r.Count(); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}
	if _, err := r.Drain(h, 1); err != ErrUnknownHandle {
		t.Fatalf("expected ErrUnknownHandle, got %v", err)
	}
}

func TestUnsubscribeUnknownHandleIsNoOp(t *testing.T) {
	r := New(4, nil)
	r.Unsubscribe(handle.Handle(99)) // must not panic
}

func TestFanOutDeliversToAllSubscribers(t *testing.T) {
	r := New(4, nil)
	h1, h2 := handle.Handle(1), handle.Handle(2)
	_ = r.Subscribe(h1)
	_ = r.Subscribe(h2)

	packet := &proxyv1.Packet{NumberOfSamples: 42}
	r.FanOut(packet)

	for _, h := range []handle.Handle{h1, h2} {
		got, err := r.Drain(h, 1)
		if err != nil {
			t.Fatalf("Drain(%v): %v", h, err)
		}
		if len(got) != 1 || got[0].NumberOfSamples != 42 {
			t.Fatalf("expected subscriber %v to receive the packet, got %v", h, got)
		}
	}
}

func TestDrainUnknownHandleFails(t *testing.T) {
	r := New(4, nil)
	if _, err := r.Drain(handle.Handle(1), 1); err != ErrUnknownHandle {
		t.Fatalf("expected ErrUnknownHandle, got %v", err)
	}
}

func TestShutdownClearsEntriesAndRejectsSubscribe(t *testing.T) {
	r := New(4, nil)
	h := handle.Handle(1)
	_ = r.Subscribe(h)

	r.Shutdown()

	if got := r.Count(); got != 0 {
		t.Fatalf("expected 0 subscribers after shutdown, got %d", got)
	}
	if err := r.Subscribe(handle.Handle(2)); err != ErrShutdown {
		t.Fatalf("expected ErrShutdown, got %v", err)
	}
}

func TestFanOutOrderPreservedPerSubscriber(t *testing.T) {
	r := New(8, nil)
	h := handle.Handle(1)
	_ = r.Subscribe(h)

	for i := int32(0); i < 5; i++ {
		r.FanOut(&proxyv1.Packet{NumberOfSamples: i})
	}
	got, err := r.Drain(h, 5)
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	for i, p := range got {
		if p.NumberOfSamples != int32(i) {
			t.Fatalf("expected packet %d at position %d, got %d", i, i, p.NumberOfSamples)
		}
	}
}

package dedup

import (
	"testing"
	"time"

	proxyv1 "github.com/rzbill/seisproxy/api/proxy/v1"
)

func samplePacket(station string, startMicros int64) *proxyv1.Packet {
	return &proxyv1.Packet{
		StreamIdentifier: &proxyv1.StreamIdentifier{
			Network: "XX",
			Station: station,
			Channel: "HHZ",
		},
		StartTimeMicros: startMicros,
		SamplingRateHz:  100,
		NumberOfSamples: 512,
	}
}

func TestNewRejectsUnboundedConfiguration(t *testing.T) {
	if _, err := New(0, 0); err != ErrNoBound {
		t.Fatalf("expected ErrNoBound, got %v", err)
	}
}

func TestNewAcceptsSizeOnly(t *testing.T) {
	if _, err := New(10, 0); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestNewAcceptsDurationOnly(t *testing.T) {
	if _, err := New(0, time.Second); err != nil {
		t.Fatalf("New: %v", err)
	}
}

// TestDuplicateDetection models scenario S6: the same packet submitted
// twice is rejected the second time.
func TestDuplicateDetection(t *testing.T) {
	d, err := New(100, time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := samplePacket("ABC", 1000)

	if !d.Allow(p) {
		t.Fatalf("expected first submission to be allowed")
	}
	if d.Allow(p) {
		t.Fatalf("expected second submission of the same packet to be rejected")
	}
}

func TestDistinctPacketsBothAllowed(t *testing.T) {
	d, err := New(100, time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !d.Allow(samplePacket("ABC", 1000)) {
		t.Fatalf("expected first packet allowed")
	}
	if !d.Allow(samplePacket("DEF", 1000)) {
		t.Fatalf("expected distinct station packet allowed")
	}
}

func TestSizeBoundEvictsOldestFingerprint(t *testing.T) {
	d, err := New(2, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := samplePacket("A", 1)
	second := samplePacket("B", 2)
	third := samplePacket("C", 3)

	d.Allow(first)
	d.Allow(second)
	d.Allow(third) // evicts first's fingerprint

	if !d.Allow(first) {
		t.Fatalf("expected evicted fingerprint to be allowed again")
	}
}

func TestDurationBoundExpiresFingerprint(t *testing.T) {
	d, err := New(0, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := samplePacket("A", 1)
	d.Allow(p)

	time.Sleep(30 * time.Millisecond)

	if !d.Allow(p) {
		t.Fatalf("expected fingerprint to expire after duration bound")
	}
}

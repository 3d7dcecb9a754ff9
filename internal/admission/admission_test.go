package admission

import "testing"

func TestCheckTokenDisabledWhenConfiguredEmpty(t *testing.T) {
	if !CheckToken("", "") {
		t.Fatalf("expected empty configured token to disable the check")
	}
	if !CheckToken("", "anything") {
		t.Fatalf("expected empty configured token to disable the check")
	}
}

func TestCheckTokenMatchesExactly(t *testing.T) {
	if !CheckToken("s3cr3t", "s3cr3t") {
		t.Fatalf("expected matching token to be accepted")
	}
}

func TestCheckTokenRejectsMismatch(t *testing.T) {
	if CheckToken("s3cr3t", "wrong") {
		t.Fatalf("expected mismatched token to be rejected")
	}
	if CheckToken("s3cr3t", "") {
		t.Fatalf("expected missing token to be rejected when one is configured")
	}
	if CheckToken("s3cr3t", "s3cr3t-longer") {
		t.Fatalf("expected different-length token to be rejected")
	}
}

func TestCapAdmitsUpToMax(t *testing.T) {
	c := NewCap(2)
	if !c.TryAcquire() {
		t.Fatalf("expected first acquire to succeed")
	}
	if !c.TryAcquire() {
		t.Fatalf("expected second acquire to succeed")
	}
	if c.TryAcquire() {
		t.Fatalf("expected third acquire to fail at cap")
	}
}

func TestCapReleaseFreesASlot(t *testing.T) {
	c := NewCap(1)
	if !c.TryAcquire() {
		t.Fatalf("expected acquire to succeed")
	}
	if c.TryAcquire() {
		t.Fatalf("expected acquire to fail at cap")
	}
	c.Release()
	if !c.TryAcquire() {
		t.Fatalf("expected acquire to succeed after release")
	}
}

func TestInvalidCounterTripsAfterBound(t *testing.T) {
	c := NewInvalidCounter(2)
	if c.Increment() {
		t.Fatalf("expected 1st invalid packet not to trip a bound of 2")
	}
	if c.Increment() {
		t.Fatalf("expected 2nd invalid packet not to trip a bound of 2")
	}
	if !c.Increment() {
		t.Fatalf("expected 3rd consecutive invalid packet to trip a bound of 2")
	}
}

func TestInvalidCounterResetClearsRun(t *testing.T) {
	c := NewInvalidCounter(1)
	c.Increment()
	c.Reset()
	if c.Increment() {
		t.Fatalf("expected a single invalid packet after reset not to trip")
	}
}

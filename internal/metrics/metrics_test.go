package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamAttempt("catalog", 10*time.Millisecond, nil)
	rec.RecordUpstreamAttempt("catalog", 15*time.Millisecond, errors.New("boom"))

	snap := rec.Upstream("catalog")
	if snap.Calls != 2 {
		t.Fatalf("expected 2 calls, got %d", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
}

func TestRecorderTracksThrottleWaits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordThrottleWait("catalog", 5*time.Second)
	rec.RecordThrottleWait("catalog", 0)

	snap := rec.Upstream("catalog")
	if snap.Throttled != 2 {
		t.Fatalf("expected 2 throttle events, got %d", snap.Throttled)
	}
	if snap.LastThrottle != 5*time.Second {
		t.Fatalf("expected last throttle wait to be 5s, got %s", snap.LastThrottle)
	}
}

func TestRecorderTracksStoreOutcomes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordStoreLoad(errors.New("missing"))
	rec.RecordStorePersist(time.Millisecond, nil)
	rec.RecordStorePersist(time.Millisecond, errors.New("disk full"))

	got := rec.Store()
	want := StoreSnapshot{Persists: 2, PersistErrors: 1, Loads: 1, LoadErrors: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRecorderTracksGuardDenials(t *testing.T) {
	rec := NewRecorder()
	rec.RecordGuardDenied("/api/products")
	rec.RecordGuardDenied("/api/products")
	if got := rec.GuardDenials(); got != 2 {
		t.Fatalf("expected 2 denials, got %d", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamAttempt("catalog", time.Millisecond, nil)
	rec.RecordThrottleWait("catalog", time.Millisecond)
	rec.RecordStorePersist(time.Millisecond, nil)
	rec.RecordStoreLoad(nil)
	rec.RecordGuardDenied("/")
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)

	if rec.Upstream("catalog").Calls != 0 || rec.Store().Persists != 0 || rec.GuardDenials() != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestOutcomeLabel(t *testing.T) {
	if outcome(nil) != outcomeOK || outcome(errors.New("x")) != outcomeError {
		t.Fatalf("unexpected outcome labels")
	}
}

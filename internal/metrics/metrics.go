package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	throttled       int
	lastThrottle    time.Duration
	lastCallLatency time.Duration
}

type storeStats struct {
	persists      int
	persistErrors int
	loads         int
	loadErrors    int
}

// Recorder captures lightweight, in-memory metrics and mirrors them to
// OpenTelemetry instruments when configured. A nil Recorder is a no-op.
type Recorder struct {
	mu           sync.Mutex
	upstreams    map[string]*upstreamStats
	store        storeStats
	guardDenials int
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		upstreams: make(map[string]*upstreamStats),
		otel:      otel,
	}
}

// RecordUpstreamAttempt counts an outbound call and stores its latency.
func (r *Recorder) RecordUpstreamAttempt(upstream string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureUpstream(upstream)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamAttempt(upstream, duration, err)
	}
}

// RecordThrottleWait tracks time an outbound call spent waiting on the local limiter.
func (r *Recorder) RecordThrottleWait(upstream string, wait time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureUpstream(upstream)
	stats.throttled++
	if wait > 0 {
		stats.lastThrottle = wait
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordThrottle(upstream, wait)
	}
}

// RecordStorePersist counts a full-collection write and whether it failed.
func (r *Recorder) RecordStorePersist(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.store.persists++
	if err != nil {
		r.store.persistErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPersist(duration, err)
	}
}

// RecordStoreLoad counts a startup load and whether it failed.
func (r *Recorder) RecordStoreLoad(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.store.loads++
	if err != nil {
		r.store.loadErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoad(err)
	}
}

// RecordGuardDenied counts a request rejected by the token guard.
func (r *Recorder) RecordGuardDenied(path string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.guardDenials++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGuardDenied(path)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// UpstreamSnapshot is a copy of the stats recorded for one upstream.
type UpstreamSnapshot struct {
	Calls           int
	Errors          int
	Throttled       int
	LastThrottle    time.Duration
	LastCallLatency time.Duration
}

// StoreSnapshot is a copy of the store persistence counters.
type StoreSnapshot struct {
	Persists      int
	PersistErrors int
	Loads         int
	LoadErrors    int
}

// Upstream returns a copy of the current stats for the upstream.
func (r *Recorder) Upstream(upstream string) UpstreamSnapshot {
	if r == nil {
		return UpstreamSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.upstreams[upstream]
	if !ok || stats == nil {
		return UpstreamSnapshot{}
	}
	return UpstreamSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Throttled:       stats.throttled,
		LastThrottle:    stats.lastThrottle,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Store returns a copy of the store counters.
func (r *Recorder) Store() StoreSnapshot {
	if r == nil {
		return StoreSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return StoreSnapshot{
		Persists:      r.store.persists,
		PersistErrors: r.store.persistErrors,
		Loads:         r.store.loads,
		LoadErrors:    r.store.loadErrors,
	}
}

// GuardDenials returns how many requests the token guard rejected.
func (r *Recorder) GuardDenials() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.guardDenials
}

// ensureUpstream must be called with r.mu held.
func (r *Recorder) ensureUpstream(upstream string) *upstreamStats {
	stats, ok := r.upstreams[upstream]
	if !ok {
		stats = &upstreamStats{}
		r.upstreams[upstream] = stats
	}
	return stats
}

// Package observability aggregates accounting and process telemetry.
// Nothing here may block or fail the discussion loop.
package observability

import (
	"math"
	"sync/atomic"
	"time"
)

// CostLedger folds per-call cost and latency into session and global totals.
// Amounts are stored as integer micro-units so atomic adds stay lossless.
type CostLedger struct {
	sessionMicro   int64
	globalMicro    int64
	sessionCalls   int64
	globalCalls    int64
	sessionLatency int64 // nanoseconds
	globalLatency  int64
}

type CostSnapshot struct {
	SessionTotal   float64
	GlobalTotal    float64
	SessionCalls   int64
	GlobalCalls    int64
	SessionLatency time.Duration
	GlobalLatency  time.Duration
}

func NewCostLedger() *CostLedger {
	return &CostLedger{}
}

// Record is a pure sink: negative or zero amounts still count the call so
// latency accounting stays complete.
func (l *CostLedger) Record(amount float64, latency time.Duration) {
	micro := int64(math.Round(amount * 1e6))
	atomic.AddInt64(&l.sessionMicro, micro)
	atomic.AddInt64(&l.globalMicro, micro)
	atomic.AddInt64(&l.sessionCalls, 1)
	atomic.AddInt64(&l.globalCalls, 1)
	atomic.AddInt64(&l.sessionLatency, int64(latency))
	atomic.AddInt64(&l.globalLatency, int64(latency))
}

// ResetSession zeroes the session-scoped counters, keeping global totals.
func (l *CostLedger) ResetSession() {
	atomic.StoreInt64(&l.sessionMicro, 0)
	atomic.StoreInt64(&l.sessionCalls, 0)
	atomic.StoreInt64(&l.sessionLatency, 0)
}

func (l *CostLedger) Snapshot() CostSnapshot {
	return CostSnapshot{
		SessionTotal:   float64(atomic.LoadInt64(&l.sessionMicro)) / 1e6,
		GlobalTotal:    float64(atomic.LoadInt64(&l.globalMicro)) / 1e6,
		SessionCalls:   atomic.LoadInt64(&l.sessionCalls),
		GlobalCalls:    atomic.LoadInt64(&l.globalCalls),
		SessionLatency: time.Duration(atomic.LoadInt64(&l.sessionLatency)),
		GlobalLatency:  time.Duration(atomic.LoadInt64(&l.globalLatency)),
	}
}

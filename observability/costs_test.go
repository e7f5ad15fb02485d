package observability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_CostLedger_accumulates_session_and_global(t *testing.T) {
	ledger := NewCostLedger()

	ledger.Record(0.002, 120*time.Millisecond)
	ledger.Record(0.003, 80*time.Millisecond)

	snap := ledger.Snapshot()
	assert.InDelta(t, 0.005, snap.SessionTotal, 1e-9)
	assert.InDelta(t, 0.005, snap.GlobalTotal, 1e-9)
	assert.EqualValues(t, 2, snap.SessionCalls)
	assert.Equal(t, 200*time.Millisecond, snap.SessionLatency)
}

func Test_CostLedger_session_reset_keeps_global(t *testing.T) {
	ledger := NewCostLedger()
	ledger.Record(0.01, time.Second)

	ledger.ResetSession()

	snap := ledger.Snapshot()
	assert.Zero(t, snap.SessionTotal)
	assert.EqualValues(t, 0, snap.SessionCalls)
	assert.InDelta(t, 0.01, snap.GlobalTotal, 1e-9)
	assert.EqualValues(t, 1, snap.GlobalCalls)
}

func Test_CostLedger_is_safe_under_concurrent_records(t *testing.T) {
	ledger := NewCostLedger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger.Record(0.001, time.Millisecond)
		}()
	}
	wg.Wait()

	snap := ledger.Snapshot()
	assert.InDelta(t, 0.05, snap.GlobalTotal, 1e-9)
	assert.EqualValues(t, 50, snap.GlobalCalls)
}

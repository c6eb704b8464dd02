package kv

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Operation Metrics
// --------------------------------------------------------------------------

// opCounters caches the per-operation counters so the hot path avoids
// re-formatting the metric name on every call.
var opCounters = xsync.NewMapOf[string, *metrics.Counter]()

// OpCounter returns the operations counter for one engine/operation pair.
// Counters are registered in the default metrics set under the name
// kvstore_store_ops_total{engine="...",op="..."} and can be exposed with
// metrics.WritePrometheus.
//
// Thread-safety: This function is thread-safe and can be called concurrently.
func OpCounter(engine, op string) *metrics.Counter {
	name := fmt.Sprintf(`kvstore_store_ops_total{engine=%q,op=%q}`, engine, op)
	counter, _ := opCounters.LoadOrCompute(name, func() *metrics.Counter {
		return metrics.GetOrCreateCounter(name)
	})
	return counter
}

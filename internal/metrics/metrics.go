package metrics

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Registry holds the process-wide payment flow counters.
type Registry struct {
	PaymentsStarted   Counter
	PaymentsConfirmed Counter
	CallbacksAccepted Counter
	CallbacksRejected Counter
	GatewayErrors     Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot returns the current counter values keyed for the metrics endpoint.
func (r *Registry) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"payments_started":   r.PaymentsStarted.Load(),
		"payments_confirmed": r.PaymentsConfirmed.Load(),
		"callbacks_accepted": r.CallbacksAccepted.Load(),
		"callbacks_rejected": r.CallbacksRejected.Load(),
		"gateway_errors":     r.GatewayErrors.Load(),
	}
}

// Handler serves the counters as JSON on GET /metrics.
func (r *Registry) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(r.Snapshot())
	}
}

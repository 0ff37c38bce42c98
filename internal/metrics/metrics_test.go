package metrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterConcurrentInc(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(5000), c.Load())
}

func TestRegistrySnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.PaymentsStarted.Inc()
	reg.PaymentsStarted.Inc()
	reg.CallbacksRejected.Inc()

	snap := reg.Snapshot()
	assert.Equal(t, uint64(2), snap["payments_started"])
	assert.Equal(t, uint64(1), snap["callbacks_rejected"])
	assert.Equal(t, uint64(0), snap["payments_confirmed"])
}

func TestRegistryHandler(t *testing.T) {
	reg := NewRegistry()
	reg.CallbacksAccepted.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	reg.Handler()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]uint64
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(1), body["callbacks_accepted"])
}

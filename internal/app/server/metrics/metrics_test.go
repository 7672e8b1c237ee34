package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveVerification(t *testing.T) {
	m := New()

	m.ObserveVerification("by_id", true)
	m.ObserveVerification("by_id", true)
	m.ObserveVerification("offline", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.verifications.WithLabelValues("by_id", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verifications.WithLabelValues("offline", "false")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.verifications.WithLabelValues("offline", "true")))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodPost, "user-register", http.StatusCreated, 15*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "user-register", http.StatusConflict, 2*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("POST", "user-register", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("POST", "user-register", "409")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestInstancesDoNotShareState(t *testing.T) {
	a, b := New(), New()
	a.ObserveVerification("by_id", true)

	assert.Equal(t, 0.0, testutil.ToFloat64(b.verifications.WithLabelValues("by_id", "true")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveVerification("offline", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `signhub_verifications_total{mode="offline",valid="true"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

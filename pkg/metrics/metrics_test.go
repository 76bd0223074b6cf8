package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveDB(t *testing.T) {
	m := New("clinic")

	m.ObserveDB("insert_patient", time.Now(), nil)
	m.ObserveDB("insert_patient", time.Now(), fmt.Errorf("database is locked"))
	m.ObserveDB("insert_patient", time.Now(), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("insert_patient", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("insert_patient", "error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDB("list_patients", time.Now(), nil)
		m.ObserveRender(time.Now(), nil)
	})
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New("clinic")
	m.ObserveRender(time.Now(), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `clinic_documents_rendered_total{status="ok"} 1`)
}

package ops

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Freeeeeet/drivingschool_bot/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type readiness bool

func (r readiness) IsLoaded() bool { return bool(r) }

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		loaded     bool
		wantStatus int
		wantBody   HealthResponse
	}{
		{"расписание загружено", true, http.StatusOK, HealthResponse{Status: statusOK, Loaded: true}},
		{"идёт загрузка", false, http.StatusServiceUnavailable, HealthResponse{Status: statusLoading}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(readiness(tt.loaded), zap.NewNop())

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	metrics.RecordOperation("add_availability", nil)

	router := NewRouter(readiness(true), zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "drivingschool_scheduling_operations_total"))
}

func TestUnknownRoute(t *testing.T) {
	router := NewRouter(readiness(true), zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

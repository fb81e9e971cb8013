package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhla/datesqr/core/health"
	"github.com/nakhla/datesqr/core/logger"
	"github.com/nakhla/datesqr/core/router"
)

type ctx = *router.Context

func get(t *testing.T, r router.Router[ctx], path string) (*httptest.ResponseRecorder, health.Report) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var report health.Report
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	}
	return rec, report
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	r := router.New[ctx]()
	r.Get("/health", health.Liveness[ctx])
	r.Get("/ping", health.NoContent[ctx])

	rec, report := get(t, r, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", report.Status)

	rec, _ = get(t, r, "/ping")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := health.Check{Name: "qr", Fn: func(context.Context) error { return nil }}
	down := health.Check{Name: "storage", Fn: func(context.Context) error { return errors.New("bucket missing") }}

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()
		r := router.New[ctx]()
		r.Get("/ready", health.Readiness[ctx](logger.Nop(), ok))

		rec, report := get(t, r, "/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, health.Report{Status: "ready", Checks: map[string]string{"qr": "ok"}}, report)
	})

	t.Run("one fails", func(t *testing.T) {
		t.Parallel()
		r := router.New[ctx]()
		r.Get("/ready", health.Readiness[ctx](nil, down, ok))

		rec, report := get(t, r, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unavailable", report.Status)
		assert.Equal(t, map[string]string{"storage": "failed", "qr": "ok"}, report.Checks)
	})

	t.Run("checks get a deadline", func(t *testing.T) {
		t.Parallel()
		var hasDeadline bool
		r := router.New[ctx]()
		r.Get("/ready", health.Readiness[ctx](nil, health.Check{Name: "d", Fn: func(c context.Context) error {
			_, hasDeadline = c.Deadline()
			return nil
		}}))

		get(t, r, "/ready")
		assert.True(t, hasDeadline)
	})
}

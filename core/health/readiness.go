package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nakhla/datesqr/core/handler"
	"github.com/nakhla/datesqr/core/logger"
	"github.com/nakhla/datesqr/core/response"
)

// DefaultCheckTimeout bounds each readiness check.
const DefaultCheckTimeout = 5 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Report is the readiness reply body.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Readiness runs every check in order and answers 200 "ready" when all pass,
// 503 "unavailable" otherwise. Every check runs even after a failure so the
// report is complete.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = logger.Nop()
	}

	return func(ctx C) handler.Response {
		report := Report{Status: "ready", Checks: make(map[string]string, len(checks))}

		for _, check := range checks {
			cctx, cancel := context.WithTimeout(ctx, DefaultCheckTimeout)
			err := check.Fn(cctx)
			cancel()

			if err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					slog.String("check", check.Name),
					logger.Error(err),
				)
				report.Status = "unavailable"
				report.Checks[check.Name] = "failed"
				continue
			}
			report.Checks[check.Name] = "ok"
		}

		if report.Status != "ready" {
			return response.JSONWithStatus(report, http.StatusServiceUnavailable)
		}
		return response.JSON(report)
	}
}

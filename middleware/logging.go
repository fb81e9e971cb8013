package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nakhla/datesqr/core/handler"
	"github.com/nakhla/datesqr/core/logger"
)

// LoggingConfig configures LoggingWithConfig.
type LoggingConfig struct {
	Skip func(ctx handler.Context) bool
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// LogLevel for successful requests, info by default. 4xx log at warn, 5xx at error.
	LogLevel slog.Level
	// SlowRequestThreshold raises the level to warn, 5s by default.
	SlowRequestThreshold time.Duration
	// Component defaults to "http".
	Component string
}

// Logging logs one line per request with the default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger logs through log.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig logs method, path, status, size and duration once the
// response has run. When the response fails before writing, the status is
// taken from the error the router will render.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			resp := next(ctx)
			if resp == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
				err := resp(rec, r)

				status := rec.status
				if err != nil && !rec.written {
					status = statusFromError(err)
				}
				duration := time.Since(start)

				lang, _ := GetLanguage(r.Context())
				requestID, _ := GetRequestID(r.Context())
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(status),
					logger.Size(rec.size),
					logger.Duration(duration),
					logger.RequestID(requestID),
					logger.Language(lang),
				}

				level := cfg.LogLevel
				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
					attrs = append(attrs, logger.Error(err))
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
					attrs = append(attrs, logger.Error(err))
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(r.Context(), level, "http request", attrs...)
				return err
			}
		}
	}
}

func statusFromError(err error) int {
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	size    int
	written bool
}

func (rw *statusRecorder) WriteHeader(code int) {
	if !rw.written {
		rw.status = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

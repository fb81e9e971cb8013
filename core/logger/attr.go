package logger

import (
	"log/slog"
	"time"
)

// Helpers return an empty Attr for nil or empty inputs, so calls like
// log.Info("msg", logger.Error(err)) need no nil checks. slog drops empty Attrs.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed logs the duration since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID creates an attribute for HTTP request IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result records an outcome such as success, failure or stale.
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

// ProductID creates an attribute for catalog product identifiers.
func ProductID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("product_id", id)
}

// Filename creates an attribute for file names and storage keys.
func Filename(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("filename", name)
}

// Size creates an attribute for byte sizes.
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Language creates an attribute for the negotiated UI language.
func Language(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("lang", lang)
}

// Seq creates an attribute for render sequence numbers.
func Seq(n uint64) slog.Attr {
	return slog.Uint64("seq", n)
}

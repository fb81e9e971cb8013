// Package logger builds slog loggers and provides attribute helpers for
// common fields.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithLevel(level),
//	)
//
//	log.Info("qr rendered",
//		logger.Component("productqr"),
//		logger.ProductID(data.ProductID),
//		logger.Size(img.Size()),
//	)
//
// Attribute helpers return an empty slog.Attr for nil errors and empty
// identifiers, which slog handlers skip:
//
//	log.Error("render failed", logger.Error(err)) // no "error" key when err is nil
//
// Nop returns a logger that discards output; libraries default to it when no
// logger is supplied.
package logger

// Package health provides liveness and readiness handlers.
//
//	r.Get("/health", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log,
//		health.Check{Name: "storage", Fn: probeStorage},
//	))
//	r.Get("/ping", health.NoContent[*router.Context])
//
// A check is any func(context.Context) error.
package health

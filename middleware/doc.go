// Package middleware provides the HTTP middleware used by the datesqr web
// surface: request IDs, structured request logging, language negotiation and
// request body limits.
//
// Every middleware is generic over handler.Context and comes in a default
// constructor plus a WithConfig variant:
//
//	r := router.New[*router.Context](router.WithLogger(log))
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		middleware.Language[*router.Context](tr, "web"),
//	)
//
// Values stored by a middleware are read back from the request context:
//
//	id, _ := middleware.GetRequestID(ctx)
//	t, _ := middleware.GetTranslator(ctx)
//
// Language checks the ?lang= query parameter, then the lang cookie, then
// Accept-Language. An explicit query choice is remembered in the cookie.
package middleware

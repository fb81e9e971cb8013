// Package router adapts github.com/gorilla/mux to typed handlers.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.ErrorHandler[*router.Context]),
//		router.WithMiddleware(middleware.RequestID[*router.Context]()),
//	)
//
//	r.Get("/health", func(ctx *router.Context) handler.Response {
//		return response.String("ok")
//	})
//	r.Route("/products/{id}", func(r router.Router[*router.Context]) {
//		r.Get("", showProduct)
//		r.Get("/qr.png", productQR)
//	})
//
//	http.ListenAndServe(":8080", r)
//
// Handlers return a handler.Response. If it fails, or the handler panics
// before writing, the error handler renders the failure. Unknown paths and
// wrong methods go through the root middleware and reach the error handler as
// ErrNotFound and ErrMethodNotAllowed, which carry 404 and 405.
//
// Get also answers HEAD. Path variables are read with ctx.Param.
//
// Without WithContextFactory the context type must be *Context.
package router

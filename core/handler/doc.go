// Package handler defines the request handling contracts shared by the router,
// response helpers and middleware.
//
// A HandlerFunc does not write to the connection itself. It returns a
// Response closure, and the router runs it:
//
//	func showProduct(ctx *router.Context) handler.Response {
//		p, ok := catalog.Find(ctx.Param("id"))
//		if !ok {
//			return response.Error(response.ErrNotFound)
//		}
//		return response.JSON(p)
//	}
//
// Errors returned by a Response reach the router's ErrorHandler, which keeps
// error rendering in one place.
//
// Middleware wraps handlers and can inspect or replace the returned Response:
//
//	func Timing[C handler.Context](next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//		return func(ctx C) handler.Response {
//			start := time.Now()
//			resp := next(ctx)
//			return func(w http.ResponseWriter, r *http.Request) error {
//				defer func() { log.Printf("%s took %s", r.URL.Path, time.Since(start)) }()
//				return resp(w, r)
//			}
//		}
//	}
package handler

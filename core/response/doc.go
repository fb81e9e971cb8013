// Package response builds handler.Response values.
//
//	r.Get("/products/{id}/qr.png", func(ctx *router.Context) handler.Response {
//		res, err := gen.Generate(ctx, data)
//		if err != nil {
//			return response.Error(err)
//		}
//		if ctx.Request().URL.Query().Get("download") == "1" {
//			return response.Attachment(res.Image.PNG(), res.Filename, "image/png")
//		}
//		return response.Bytes(res.Image.PNG(), "image/png")
//	})
//
// Available responders: String, Bytes, JSON, Template, Attachment, Inline,
// Status, NoContent and Redirect, each with a WithStatus variant where it
// makes sense. WithHeaders and WithCache decorate any Response.
//
// Errors are returned with Error and rendered by ErrorHandler or
// JSONErrorHandler, installed on the router. HTTPError carries the status,
// a machine-readable code, a message and optional details:
//
//	return response.Error(response.ErrUnprocessableEntity.
//		WithMessage("not a product code").
//		WithDetails(map[string]any{"reason": "type mismatch"}))
//
// Other errors are mapped through a StatusCode() int method when they have
// one and become 500 otherwise. Causes of 5xx errors are not sent to clients.
package response

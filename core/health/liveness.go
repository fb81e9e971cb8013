package health

import (
	"github.com/nakhla/datesqr/core/handler"
	"github.com/nakhla/datesqr/core/response"
)

// Liveness reports that the process is serving. It never checks dependencies.
func Liveness[C handler.Context](C) handler.Response {
	return response.JSON(map[string]string{"status": "ok"})
}

// NoContent returns 204 without a body.
func NoContent[C handler.Context](C) handler.Response {
	return response.NoContent()
}

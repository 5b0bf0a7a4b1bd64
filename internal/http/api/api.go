package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError carries the status code and client-facing message for a
// failed endpoint. Err, when set, is rendered into the response's
// "error" field verbatim (the published API contract exposes it).
type APIError struct {
	Code    int
	Message string
	Err     error
}

// HandlerFunc is an endpoint that returns either a response body or an
// APIError.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc to gin, shaping errors into the
// {success:false, message, error} envelope.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiError := h(ctx)
		if apiError != nil {
			body := gin.H{
				"success": false,
				"message": apiError.Message,
			}
			if apiError.Err != nil {
				body["error"] = apiError.Err.Error()
			}
			ctx.JSON(apiError.Code, body)
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

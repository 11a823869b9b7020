package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"lensx/internal/middleware"
	"lensx/internal/models"
)

// APIError defines standard error response
// Example: { "error": { "code": "bad_request", "message": "Invalid ID" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.JSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func NotFound(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusNotFound, "not_found", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

// statusFor classifies err: unknown task is 404, a bad upload is 400 and
// anything else, including a predictor breaking its contract, is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrUnknownTask):
		return http.StatusNotFound
	case models.IsUploadError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes the JSON error for err and records it on the context.
func HandleError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	switch statusFor(err) {
	case http.StatusNotFound:
		NotFound(ctx, err.Error())
	case http.StatusBadRequest:
		BadRequest(ctx, err.Error())
	default:
		logInternal(ctx, err)
		Internal(ctx, "internal error, see server log")
	}
}

func logInternal(ctx *gin.Context, err error) {
	log.WithError(err).WithField("request_id", ctx.GetString(middleware.RequestIDKey)).Error("Internal error")
}

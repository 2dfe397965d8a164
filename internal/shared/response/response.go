package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/shared/apperror"
)

// Catalog payloads carry Cyrillic and other non-ASCII text; they are written
// as raw UTF-8 with HTML characters left alone.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

const contentTypeJSON = "application/json; charset=utf-8"

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success writes the success envelope
func Success(c *gin.Context, statusCode int, message string, data any) {
	render(c, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorWithDetails writes the error envelope
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	render(c, statusCode, Response{
		Success: false,
		Message: http.StatusText(statusCode),
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError maps a domain error to its status and writes the error envelope.
// Errors outside the apperror taxonomy are logged and reported as a generic
// internal error so that storage details never reach the client.
func FromError(c *gin.Context, err error) {
	if apperror.KindOf(err) == apperror.KindInternal {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		InternalServerError(c, "Internal server error")
		return
	}

	appErr, _ := apperror.As(err)
	ErrorWithDetails(c, StatusFor(appErr.Kind), appErr.Code, appErr.Message, appErr.Details)
}

// StatusFor returns the HTTP status for an error kind
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindValidation,
		apperror.KindConflict,
		apperror.KindReference,
		apperror.KindDependency:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Common error responses
func NotFound(c *gin.Context, message string) {
	ErrorWithDetails(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func TooManyRequests(c *gin.Context, message string) {
	ErrorWithDetails(c, http.StatusTooManyRequests, "RATE_LIMITED", message, nil)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

func render(c *gin.Context, statusCode int, body Response) {
	data, err := jsonAPI.MarshalIndent(body, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		c.Data(http.StatusInternalServerError, contentTypeJSON,
			[]byte(`{"success":false,"error":{"code":"INTERNAL_SERVER_ERROR","message":"Internal server error"}}`))
		return
	}
	c.Data(statusCode, contentTypeJSON, data)
}

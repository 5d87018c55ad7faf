package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors to HTTP responses.
// Ownership misses and genuinely missing rows share the same 404 so callers
// cannot probe for resources owned by other users.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrGoalNotFound),
		errors.Is(err, ErrActivityTypeNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrSessionExpired):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidDuration),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidDistance),
		errors.Is(err, ErrEmptyTranscription),
		errors.Is(err, ErrResetTokenInvalid),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrActivityTypeExists):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTranscriptionFailed):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrProviderNotConfigured):
		log.Printf("provider misconfiguration: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

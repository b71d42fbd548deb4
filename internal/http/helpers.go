package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/logger"
)

// --- Response Types ---

// ErrorResponse is the error body returned by every books route.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// --- Error Response Helpers ---

// respondError sends an error body with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

// respondBadRequest sends a 400 with the operation's fixed message.
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, log *logger.Logger, err error, operation string) {
	log.Error("Internal error", "operation", operation, "error", err)
	respondError(c, http.StatusInternalServerError, "internal server error")
}

// respondServiceError maps a catalog error to its HTTP status. Validation
// failures answer with badRequestMessage and the violations are logged.
func respondServiceError(c *gin.Context, log *logger.Logger, err error, operation, badRequestMessage string) {
	var validationErr *catalog.ValidationError
	var notFoundErr *catalog.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		log.Warn("Invalid input", "operation", operation, "violations", validationErr.Violations.String())
		respondBadRequest(c, badRequestMessage)
	case errors.As(err, &notFoundErr):
		respondError(c, http.StatusNotFound, notFoundErr.Message)
	default:
		respondInternalError(c, log, err, operation)
	}
}

// --- Success Response Helpers ---

// respondPayload sends the success envelope: a message plus the payload under key.
func respondPayload(c *gin.Context, status int, message, key string, payload any) {
	c.JSON(status, gin.H{
		"message": message,
		key:       payload,
	})
}

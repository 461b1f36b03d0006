package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/businesscards/internal/cards"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 response carrying the
// error text as details.
func respondInternalError(c *gin.Context, err error, context string) {
	log.WithError(err).WithField("context", context).Error("Internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "An unexpected error occurred.",
		Details: err.Error(),
	})
}

// respondServiceError maps a CardService error to a response:
// bad input is 400, unknown ids 404, anything else 500.
func respondServiceError(c *gin.Context, err error, context string) {
	if errors.Is(err, cards.ErrNotFound) {
		respondNotFound(c, "Business card")
		return
	}
	if !cards.IsClientError(err) {
		respondInternalError(c, err, context)
		return
	}

	log.WithError(err).WithField("context", context).Info("Rejected request")
	c.JSON(http.StatusBadRequest, clientErrorResponse(err))
}

func clientErrorResponse(err error) ErrorResponse {
	var resp ErrorResponse

	var recordErr *cards.RecordError
	if errors.As(err, &recordErr) {
		resp.Error = recordErr.Error()
		resp.Details = gin.H{"position": recordErr.Position}
	}

	var validationErr *cards.ValidationError
	var structuralErr *cards.StructuralError
	switch {
	case errors.As(err, &validationErr):
		resp.Code = string(validationErr.Kind)
		if resp.Error == "" {
			resp.Error = validationErr.Message
		}
	case errors.As(err, &structuralErr):
		resp.Code = string(structuralErr.Kind)
		if resp.Error == "" {
			resp.Error = structuralErr.Message
			if structuralErr.Err != nil {
				resp.Details = structuralErr.Err.Error()
			}
		}
	}

	return resp
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

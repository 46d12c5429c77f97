package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/multimedia/internal/database"
	"github.com/mrlokans/multimedia/internal/entities"
)

// Machine-readable error kinds carried in ErrorResponse.Code.
const (
	CodeBadRequest  = "bad_request"
	CodeNotFound    = "not_found"
	CodeConflict    = "conflict"
	CodeUnavailable = "unavailable"
	CodeInternal    = "internal"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse is the confirmation body returned by write operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: CodeBadRequest})
}

func respondNotFound(c *gin.Context, resource string) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: CodeNotFound})
}

func respondConflict(c *gin.Context, conflict *database.ConflictError) {
	var details any
	if conflict.Field != "" {
		details = gin.H{"field": conflict.Field}
	}
	c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{
		Error:   conflict.Error(),
		Code:    CodeConflict,
		Details: details,
	})
}

func respondUnavailable(c *gin.Context, err error, context string) {
	slog.Warn("Database unavailable", "context", context, "error", err, "request_id", requestID(c))
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{Error: "database unavailable", Code: CodeUnavailable})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	slog.Error("Internal error", "context", context, "error", err, "request_id", requestID(c))
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: CodeInternal})
}

// respondStoreError maps a repository error onto the error taxonomy.
// resource names the entity for not-found messages.
func respondStoreError(c *gin.Context, err error, resource, context string) {
	var conflict *database.ConflictError
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, resource)
	case errors.As(err, &conflict):
		respondConflict(c, conflict)
	case errors.Is(err, database.ErrUnavailable):
		respondUnavailable(c, err, context)
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondMessage sends a 200 OK confirmation message.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// --- Request Parsing ---

// parseIDParam extracts an integer ID from URL parameters. Text that is not an
// integer gets a 400 error and returns 0, false. Integers that cannot name a
// stored row (zero, negative or out of range) return 0, true, and the
// repositories report ID 0 as not found.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	if err != nil || id <= 0 || uint64(id) > uint64(^uint(0)) {
		return 0, true
	}
	return uint(id), true
}

// bindJSON decodes and validates the request body into obj. On failure it
// logs the decoder error and responds with a 400 naming only JSON fields.
func bindJSON(c *gin.Context, obj any, resource string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	slog.Info("Rejected request body", "resource", resource, "error", err, "request_id", requestID(c))
	respondBadRequest(c, bodyErrorMessage(err, resource))
	return false
}

func bodyErrorMessage(err error, resource string) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "malformed JSON body"
	case errors.Is(err, entities.ErrInvalidDate):
		return "invalid " + resource + ": dates must be formatted as YYYY-MM-DD"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Sprintf("invalid %s: field %s has the wrong type", resource, typeErr.Field)
	case errors.As(err, &validationErrs):
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Sprintf("invalid %s: missing required field %s", resource, strings.Join(fields, ", "))
	default:
		return "invalid " + resource + " body"
	}
}

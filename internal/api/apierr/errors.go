package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/connect4-arena/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidBoard      = "INVALID_BOARD"
	CodeInvalidSide       = "INVALID_SIDE"
	CodeIllegalMove       = "ILLEGAL_MOVE"
	CodeNoLegalMove       = "NO_LEGAL_MOVE"
	CodeSearchIncomplete  = "SEARCH_INCOMPLETE"
	CodeUnknownPlayerKind = "UNKNOWN_PLAYER_KIND"
	CodeSamePlayer        = "SAME_PLAYER"
	CodeStandingNotFound  = "STANDING_NOT_FOUND"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Move errors carry the reason, so the message is passed through
	switch {
	case errors.Is(err, model.ErrInvalidBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, err.Error()}}
	case errors.Is(err, model.ErrInvalidSide):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSide, "Side must be red or blue"}}
	case errors.Is(err, model.ErrOutOfRange),
		errors.Is(err, model.ErrCellOccupied),
		errors.Is(err, model.ErrMidAir),
		errors.Is(err, model.ErrIllegalMove):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeIllegalMove, err.Error()}}
	case errors.Is(err, model.ErrNoLegalMove):
		return &httpError{http.StatusConflict, APIError{CodeNoLegalMove, "The board is full"}}
	case errors.Is(err, model.ErrSearchIncomplete):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeSearchIncomplete, "Search did not complete in time"}}
	case errors.Is(err, model.ErrUnknownPlayerKind):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownPlayerKind, err.Error()}}
	case errors.Is(err, model.ErrSamePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeSamePlayer, "Red and blue must have different names"}}
	case errors.Is(err, model.ErrStandingNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeStandingNotFound, "Standing not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewMethodNotAllowedError creates a method not allowed error
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method not allowed"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

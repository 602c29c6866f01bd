package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bosjol/tactical-ops/internal/model"
	"github.com/bosjol/tactical-ops/internal/services/auth"
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
	CodeInvalidRequest          = "INVALID_REQUEST"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodePlayerNotFound          = "PLAYER_NOT_FOUND"
	CodeCallsignTaken           = "CALLSIGN_TAKEN"
	CodePlayerNotActive         = "PLAYER_NOT_ACTIVE"
	CodeEventNotFound           = "EVENT_NOT_FOUND"
	CodeInvalidStateTransition  = "INVALID_STATE_TRANSITION"
	CodeEventNotAcceptingEntry  = "EVENT_NOT_ACCEPTING_ENTRY"
	CodeEventNotInProgress      = "EVENT_NOT_IN_PROGRESS"
	CodeAlreadySignedUp         = "ALREADY_SIGNED_UP"
	CodeNotSignedUp             = "NOT_SIGNED_UP"
	CodeAlreadyAdmitted         = "ALREADY_ADMITTED"
	CodeNotAttendee             = "NOT_ATTENDEE"
	CodeAlreadyAbsent           = "ALREADY_ABSENT"
	CodeInsufficientAttendees   = "INSUFFICIENT_ATTENDEES"
	CodeMissingDiscountReason   = "MISSING_DISCOUNT_REASON"
	CodeVoucherCodeTaken        = "VOUCHER_CODE_TAKEN"
	CodeVoucherNotFound         = "VOUCHER_NOT_FOUND"
	CodeVoucherInactive         = "VOUCHER_INACTIVE"
	CodeVoucherWrongOwner       = "VOUCHER_WRONG_OWNER"
	CodeVoucherDepleted         = "VOUCHER_DEPLETED"
	CodeVoucherPerUserExhausted = "VOUCHER_PER_USER_EXHAUSTED"
	CodeItemNotFound            = "ITEM_NOT_FOUND"
	CodeOutOfStock              = "OUT_OF_STOCK"
	CodeRuleNotFound            = "RULE_NOT_FOUND"
	CodeUsernameExists          = "USERNAME_EXISTS"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeInternalError           = "INTERNAL_ERROR"
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
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Out of stock errors carry the offending item id
	var oos *model.OutOfStockError
	if errors.As(err, &oos) {
		return &httpError{http.StatusConflict, APIError{CodeOutOfStock, oos.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrCallsignTaken):
		return &httpError{http.StatusConflict, APIError{CodeCallsignTaken, "Callsign is already taken"}}
	case errors.Is(err, model.ErrPlayerNotActive):
		return &httpError{http.StatusConflict, APIError{CodePlayerNotActive, "Player is not active"}}
	case errors.Is(err, model.ErrEventNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeEventNotFound, "Event not found"}}
	case errors.Is(err, model.ErrInvalidStateTransition):
		return &httpError{http.StatusConflict, APIError{CodeInvalidStateTransition, "Event state does not allow this action"}}
	case errors.Is(err, model.ErrEventNotAcceptingEntry):
		return &httpError{http.StatusConflict, APIError{CodeEventNotAcceptingEntry, "Event is not accepting admissions"}}
	case errors.Is(err, model.ErrEventNotInProgress):
		return &httpError{http.StatusConflict, APIError{CodeEventNotInProgress, "Event is not in progress"}}
	case errors.Is(err, model.ErrAlreadySignedUp):
		return &httpError{http.StatusConflict, APIError{CodeAlreadySignedUp, "Player is already signed up"}}
	case errors.Is(err, model.ErrNotSignedUp):
		return &httpError{http.StatusNotFound, APIError{CodeNotSignedUp, "Player is not signed up"}}
	case errors.Is(err, model.ErrAlreadyAttendee):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyAdmitted, "Player has already been admitted"}}
	case errors.Is(err, model.ErrNotAttendee):
		return &httpError{http.StatusNotFound, APIError{CodeNotAttendee, "Player is not an attendee"}}
	case errors.Is(err, model.ErrAlreadyAbsent):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyAbsent, "Player is already marked absent"}}
	case errors.Is(err, model.ErrInsufficientAttendees):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientAttendees, "Not enough attendees to start"}}
	case errors.Is(err, model.ErrMissingDiscountReason):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingDiscountReason, "Manual discount requires a reason"}}
	case errors.Is(err, model.ErrCodeTaken):
		return &httpError{http.StatusConflict, APIError{CodeVoucherCodeTaken, "Voucher code is already in use"}}
	case errors.Is(err, model.ErrVoucherNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeVoucherNotFound, "Voucher not found"}}
	case errors.Is(err, model.ErrVoucherInactive):
		return &httpError{http.StatusConflict, APIError{CodeVoucherInactive, "Voucher is not active"}}
	case errors.Is(err, model.ErrVoucherWrongOwner):
		return &httpError{http.StatusForbidden, APIError{CodeVoucherWrongOwner, "Voucher is assigned to a different player"}}
	case errors.Is(err, model.ErrVoucherDepleted):
		return &httpError{http.StatusConflict, APIError{CodeVoucherDepleted, "Voucher usage limit reached"}}
	case errors.Is(err, model.ErrVoucherPerUserExhausted):
		return &httpError{http.StatusConflict, APIError{CodeVoucherPerUserExhausted, "Voucher per-player limit reached"}}
	case errors.Is(err, model.ErrItemNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeItemNotFound, "Inventory item not found"}}
	case errors.Is(err, model.ErrOutOfStock):
		return &httpError{http.StatusConflict, APIError{CodeOutOfStock, "Item is out of stock"}}
	case errors.Is(err, model.ErrRuleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRuleNotFound, "Rule not found"}}

	// Map auth errors
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

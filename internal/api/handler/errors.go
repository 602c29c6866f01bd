package handler

import (
	"net/http"

	"github.com/bosjol/tactical-ops/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest          = apierr.CodeInvalidRequest
	CodeUnauthorized            = apierr.CodeUnauthorized
	CodePlayerNotFound          = apierr.CodePlayerNotFound
	CodeCallsignTaken           = apierr.CodeCallsignTaken
	CodePlayerNotActive         = apierr.CodePlayerNotActive
	CodeEventNotFound           = apierr.CodeEventNotFound
	CodeInvalidStateTransition  = apierr.CodeInvalidStateTransition
	CodeEventNotAcceptingEntry  = apierr.CodeEventNotAcceptingEntry
	CodeEventNotInProgress      = apierr.CodeEventNotInProgress
	CodeAlreadySignedUp         = apierr.CodeAlreadySignedUp
	CodeNotSignedUp             = apierr.CodeNotSignedUp
	CodeAlreadyAdmitted         = apierr.CodeAlreadyAdmitted
	CodeNotAttendee             = apierr.CodeNotAttendee
	CodeAlreadyAbsent           = apierr.CodeAlreadyAbsent
	CodeInsufficientAttendees   = apierr.CodeInsufficientAttendees
	CodeMissingDiscountReason   = apierr.CodeMissingDiscountReason
	CodeVoucherCodeTaken        = apierr.CodeVoucherCodeTaken
	CodeVoucherNotFound         = apierr.CodeVoucherNotFound
	CodeVoucherInactive         = apierr.CodeVoucherInactive
	CodeVoucherWrongOwner       = apierr.CodeVoucherWrongOwner
	CodeVoucherDepleted         = apierr.CodeVoucherDepleted
	CodeVoucherPerUserExhausted = apierr.CodeVoucherPerUserExhausted
	CodeItemNotFound            = apierr.CodeItemNotFound
	CodeOutOfStock              = apierr.CodeOutOfStock
	CodeRuleNotFound            = apierr.CodeRuleNotFound
	CodeUsernameExists          = apierr.CodeUsernameExists
	CodeInvalidCredentials      = apierr.CodeInvalidCredentials
	CodeInternalError           = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}

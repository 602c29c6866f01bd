package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrCallsignTaken   = errors.New("callsign is already taken")
	ErrPlayerNotActive = errors.New("player is not active")

	// Event errors
	ErrEventNotFound          = errors.New("event not found")
	ErrInvalidStateTransition = errors.New("invalid event state transition")
	ErrEventNotAcceptingEntry = errors.New("event is not accepting admissions")
	ErrEventNotInProgress     = errors.New("event is not in progress")
	ErrAlreadySignedUp        = errors.New("player is already signed up")
	ErrNotSignedUp            = errors.New("player is not signed up")
	ErrAlreadyAttendee        = errors.New("player is already admitted")
	ErrNotAttendee            = errors.New("player is not an attendee")
	ErrAlreadyAbsent          = errors.New("player is already marked absent")
	ErrInsufficientAttendees  = errors.New("not enough attendees to start")
	ErrMissingDiscountReason  = errors.New("manual discount requires a reason")

	// Voucher errors
	ErrCodeTaken               = errors.New("voucher code is already in use")
	ErrVoucherNotFound         = errors.New("voucher not found")
	ErrVoucherInactive         = errors.New("voucher is not active")
	ErrVoucherWrongOwner       = errors.New("voucher is assigned to a different player")
	ErrVoucherDepleted         = errors.New("voucher usage limit reached")
	ErrVoucherPerUserExhausted = errors.New("voucher per-player limit reached")

	// Inventory errors
	ErrItemNotFound = errors.New("inventory item not found")
	ErrOutOfStock   = errors.New("item is out of stock")

	// Rule errors
	ErrRuleNotFound = errors.New("gamification rule not found")

	// Operator errors
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OutOfStockError reports which item could not be rented.
// It unwraps to ErrOutOfStock.
type OutOfStockError struct {
	ItemID ItemID
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("item %s is out of stock", e.ItemID)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}

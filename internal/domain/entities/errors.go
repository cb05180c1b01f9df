package entities

import "errors"

// Domain error taxonomy shared by every layer.
//
// Each rejected mutation wraps one of these sentinels with the specific
// violated constraint, and leaves the aggregate unchanged.

var (
	ErrValidation        = errors.New("validation failed")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("work order not found")
	ErrLineItemNotFound  = errors.New("line item not found")
	ErrVersionConflict   = errors.New("version conflict")
)

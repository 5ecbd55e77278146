package booking

import "fmt"

// Stable booking failure codes, exposed to API clients.
const (
	CodeSlotUnavailable = "slotUnavailable"
	CodeSlotHeld        = "slotHeld"
	CodeNotOwner        = "notOwner"
)

// BookingError is a caller-visible booking failure with a stable code.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlotUnavailableError(msg string) error {
	return &BookingError{Code: CodeSlotUnavailable, Message: msg}
}

func NewSlotHeldError(msg string) error {
	return &BookingError{Code: CodeSlotHeld, Message: msg}
}

func NewNotOwnerError(msg string) error {
	return &BookingError{Code: CodeNotOwner, Message: msg}
}

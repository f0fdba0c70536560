package store

import "errors"

// Kind classifies an error for the HTTP layer
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindUnauthorized:
		return "authentication error"
	case KindNotFound:
		return "not found"
	default:
		return "unknown error"
	}
}

// Error carries a message that is safe to show to API clients
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is lets errors.Is match any error of a kind against the bare kind sentinels
// (ErrValidation, ErrUnauthorized, ErrNotFound)
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Kind == e.Kind
}

// Kind sentinels
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrNotFound     = &Error{Kind: KindNotFound}
)

var (
	ErrEmptyCart          = Invalid("Cart is empty")
	ErrDuplicateUsername  = Invalid("Username already exists")
	ErrDuplicateEmail     = Invalid("Email already exists")
	ErrAmountMismatch     = Invalid("Payment amount does not match cart total")
	ErrAmountPrecision    = Invalid("Amount must have at most 2 decimal places")
	ErrAmountTooLarge     = Invalid("Amount is too large")
	ErrCheckoutInProgress = Invalid("Checkout already in progress")

	ErrAuthenticationRequired = &Error{Kind: KindUnauthorized, Message: "Authentication required"}
	ErrInvalidCredentials     = &Error{Kind: KindUnauthorized, Message: "Invalid username or password"}

	ErrGameNotFound = &Error{Kind: KindNotFound, Message: "Game not found"}
	ErrUserNotFound = &Error{Kind: KindNotFound, Message: "User not found"}
)

// Invalid builds a validation error with a client-facing message
func Invalid(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the classification of err, or 0 for internal errors
func KindOf(err error) (Kind, string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, e.Error()
	}
	return 0, ""
}

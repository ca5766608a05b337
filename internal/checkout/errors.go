package checkout

import "errors"

var (
	ErrMissingCustomerDetails = errors.New("missing customer details")
	ErrEmptyCart              = errors.New("empty cart")
	ErrSubmissionInFlight     = errors.New("order submission already in progress")
)

// IsValidationError reports whether err is a precondition failure that never
// reached the order collaborator.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingCustomerDetails) || errors.Is(err, ErrEmptyCart)
}

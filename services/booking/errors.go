package booking

import "fmt"

// ValidationError indicates a request rejected before any state change,
// such as a missing schedule field or a provider outside the candidate set.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// NotFoundError indicates a referenced service, booking, or provider that
// does not exist.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{
		Code:    "notFound",
		Message: msg,
	}
}

// InvalidTransitionError indicates a status change the state machine does
// not permit. The booking is left untouched.
type InvalidTransitionError struct {
	Code string
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move booking from %q to %q", e.Code, e.From, e.To)
}

func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{
		Code: "invalidTransition",
		From: from,
		To:   to,
	}
}

// RepositoryError indicates the underlying store was unavailable or
// rejected a write. Fatal for the current operation; no automatic retry.
type RepositoryError struct {
	Code    string
	Message string
	Err     error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func NewRepositoryError(msg string, err error) error {
	return &RepositoryError{
		Code:    "repositoryError",
		Message: msg,
		Err:     err,
	}
}

package services

import "errors"

// EntitlementError is a rule denial with a user-readable reason, as
// opposed to an infrastructure failure. Controllers surface the reason
// verbatim.
type EntitlementError struct {
	Reason string
}

func (e *EntitlementError) Error() string {
	return e.Reason
}

// Denied builds an entitlement denial.
func Denied(reason string) error {
	return &EntitlementError{Reason: reason}
}

// IsDenied reports whether err is an entitlement denial rather than an
// infrastructure failure.
func IsDenied(err error) bool {
	var e *EntitlementError
	return errors.As(err, &e)
}

// ValidationError rejects malformed input before any store access.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid builds a validation error.
func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsInvalid reports whether err is an input validation error.
func IsInvalid(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

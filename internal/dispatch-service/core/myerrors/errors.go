package myerrors

import "errors"

var (
	ErrRequiredFieldsMissing = errors.New("required fields are missing")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrFieldNotAllowed       = errors.New("invalid field name")

	ErrDriverNotFound = errors.New("driver not found")
	ErrTripNotFound   = errors.New("trip not found")
)

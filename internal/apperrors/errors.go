package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that the caller did not present valid credentials.
var ErrUnauthorized = errors.New("unauthorized")

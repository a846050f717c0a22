package errors

import (
	"context"
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// FromContext converts a context error into a coded error. Other errors are
// returned unchanged.
func FromContext(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return WrapWithCode(err, CodeCanceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return WrapWithCode(err, CodeDeadlineExceeded, "request deadline exceeded")
	default:
		return err
	}
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnknownCategory checks if an error is an unknown category error
func IsUnknownCategory(err error) bool {
	return GetCode(err) == CodeUnknownCategory
}

// IsInvalidModifier checks if an error is an invalid modifier error
func IsInvalidModifier(err error) bool {
	return GetCode(err) == CodeInvalidModifier
}

// IsUserFacing reports whether the error's message is safe to show on a sheet.
func IsUserFacing(err error) bool {
	switch GetCode(err) {
	case CodeInvalidArgument, CodeInvalidModifier, CodeUnknownCategory,
		CodeFailedPrecondition, CodeNotFound:
		return true
	default:
		return false
	}
}

package errors

import (
	"context"
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode extracts the code of err. Context cancellation maps to CANCELED
// and deadlines to UNAVAILABLE; any other foreign error is INTERNAL.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	switch {
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeUnavailable
	}
	return CodeInternal
}

// GetMeta extracts the metadata of err
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// ExitCodeOf maps an error to the process exit status for its code
func ExitCodeOf(err error) int {
	return GetCode(err).ExitCode()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsUnimplemented checks if an error is an unimplemented error
func IsUnimplemented(err error) bool { return GetCode(err) == CodeUnimplemented }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }

// IsCanceled checks if an error is a canceled error
func IsCanceled(err error) bool { return GetCode(err) == CodeCanceled }

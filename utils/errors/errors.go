package errors

import "github.com/mukhtarmk/ecommerce-api/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithMessage overrides the default taxonomy message, e.g. to
// name the missing product or the failing field.
func SetCustomErrorWithMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

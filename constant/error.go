package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrValidation
	ErrProductNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "data not found",
	ErrInvalidRequest:  "invalid request",
	ErrValidation:      "validation failed",
	ErrProductNotFound: "product not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusBadRequest,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrValidation:      http.StatusUnprocessableEntity,
	ErrProductNotFound: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrValidation:      "0004",
	ErrProductNotFound: "0005",
}

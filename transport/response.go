package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/mukhtarmk/ecommerce-api/constant"
	"github.com/mukhtarmk/ecommerce-api/utils/errors"
)

const defaultLimit = 10

// ErrorResponse is the error body written for every failed request.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusOK, v)
}

func writeCreated(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusCreated, v)
}

func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
			ErrorCode: ce.ErrorCode(),
			Message:   ce.Error(),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		ErrorCode: constant.ErrorTypeCode[constant.ErrInternal],
		Message:   constant.ErrorTypeMessage[constant.ErrInternal],
	})
}

// parseWindow reads the limit/offset query params. Absent params take the
// defaults (10/0); zero is a valid value for both; non-integer or negative
// values are rejected.
func parseWindow(r *http.Request) (int64, int64, error) {
	limit := int64(defaultLimit)
	offset := int64(0)

	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return 0, 0, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "limit must be a non-negative integer")
		}
		limit = v
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return 0, 0, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "offset must be a non-negative integer")
		}
		offset = v
	}

	return limit, offset, nil
}

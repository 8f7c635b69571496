package errors

import "net/http"

var ErrInvalidDateFormat = &Exception{
	Message:    "invalid date format",
	StatusCode: http.StatusBadRequest,
}

package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("email already registered")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("invalid email or password")
)

// RespondError maps domain errors to HTTP responses.
//
// Conflicts surface as 400, not 409: the original wire contract reports
// duplicate registration as a plain bad request and clients key off that.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrConflict):
		Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, ErrBadRequest):
		Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, ErrUnauthorized):
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string         `json:"error"`
	Kind  errorspkg.Kind `json:"kind,omitempty"`
}

// Error wraps a given err into json friendly struct.
//
// Errors without a kind are reported as errorspkg.ErrInternal.
func Error(err error) JSONError {
	var e *errorspkg.Error
	if !errors.As(err, &e) {
		err = errorspkg.ErrInternal
	}

	return JSONError{Error: err.Error(), Kind: errorspkg.KindOf(err)}
}

// ValidationError wraps a request binding error.
func ValidationError(msg string) JSONError {
	return JSONError{Error: msg, Kind: errorspkg.KindValidation}
}

// BindingError returns the response for a request that failed to bind.
func BindingError(err error) JSONError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationError(GetErrorMsg(ve))
	}

	return ValidationError("invalid request")
}

// Response holds the common response type for all APIs.
type Response struct {
	Data any `json:"data,omitempty"`
}

// Status returns the http status code matching the kind of err.
func Status(err error) int {
	switch errorspkg.KindOf(err) {
	case errorspkg.KindValidation:
		return http.StatusBadRequest
	case errorspkg.KindNotFound:
		return http.StatusNotFound
	case errorspkg.KindConflict:
		return http.StatusConflict
	case errorspkg.KindConnectivity:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMsg returns a readable message for the first failed validation rule.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return "invalid request"
	}

	fe := ve[0]

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "identity":
		return fmt.Sprintf("%s must be in format XXX-XX-XXXX", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	}

	return fmt.Sprintf("%s is invalid", fe.Field())
}

package common

import (
	"errors"
	"net/http"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrAPI        = errors.New("api error")
	ErrNetwork    = errors.New("network error")
	ErrTimeout    = errors.New("request timeout")
)

// Kind classifies every failure this layer can return.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAPI
	KindNetwork
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindAPI:
		return "ApiError"
	case KindNetwork:
		return "NetworkError"
	case KindTimeout:
		return "TimeoutError"
	default:
		return "UnknownError"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindAPI:
		return ErrAPI
	case KindNetwork:
		return ErrNetwork
	case KindTimeout:
		return ErrTimeout
	}
	return nil
}

// Error is the normalized error returned by the dispatcher and the catalog.
// Response is the raw transport response when one was received.
type Error struct {
	Kind     Kind
	Message  string
	Response *http.Response
	Err      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrAPI) and friends match on Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// StatusCode returns the HTTP status of the attached response, or 0.
func (e *Error) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the Kind of a normalized error, or 0 for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsAPIError reports whether the backend answered and flagged a failure in
// its envelope.
func IsAPIError(err error) bool {
	return KindOf(err) == KindAPI
}

package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrRateLimited         = errors.New("rate limited")
	ErrInvalidSymbol       = errors.New("invalid symbol")
	ErrUnknownAssetType    = errors.New("unknown asset type")
	ErrMalformed           = errors.New("malformed upstream payload")
)

// UpstreamError is returned by upstream clients. Kind is one of ErrNotFound,
// ErrRateLimited or ErrUpstreamUnavailable; a rate limited error also matches
// ErrUpstreamUnavailable.
type UpstreamError struct {
	Provider string
	Status   int
	Kind     error
	Err      error
}

func (e *UpstreamError) Error() string {
	msg := e.Provider + ": " + e.Kind.Error()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Kind == ErrRateLimited {
		errs = append(errs, ErrUpstreamUnavailable)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsUpstreamFailure reports whether err came from talking to an upstream
// provider, which is the only class of failure that static data may paper over.
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrMalformed) ||
		errors.Is(err, context.DeadlineExceeded)
}

package strava

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTokenRequest indicates the token endpoint answered with a non-success status.
	ErrTokenRequest = errors.New("token request failed")
	// ErrActivitiesRequest indicates the activities endpoint answered with a non-200 status.
	ErrActivitiesRequest = errors.New("activities request failed")
	// ErrInvalidLimit indicates a page size outside 1..MaxPerPage.
	ErrInvalidLimit = errors.New("invalid page size")
	// ErrMissingCredentials indicates the refresh credential is empty. It is a token failure.
	ErrMissingCredentials = fmt.Errorf("%w: missing credentials", ErrTokenRequest)
)

// StatusError describes a remote call that completed with an unexpected HTTP status.
type StatusError struct {
	Err        error
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %d %s - %s", e.Err, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

package feed

import (
	"errors"

	"github.com/rpggio/stravafeed/internal/strava"
)

// IsTokenFailure reports whether err is a failed token request.
func IsTokenFailure(err error) bool {
	return errors.Is(err, strava.ErrTokenRequest)
}

// IsActivitiesFailure reports whether err is a failed activities request.
func IsActivitiesFailure(err error) bool {
	return errors.Is(err, strava.ErrActivitiesRequest)
}

// IsStatusFailure reports whether err is one of the two recognized failure kinds.
// Anything else is an unexpected fault.
func IsStatusFailure(err error) bool {
	return IsTokenFailure(err) || IsActivitiesFailure(err)
}

func statusCode(err error) int {
	var statusErr *strava.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

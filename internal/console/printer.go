package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/rpggio/stravafeed/internal/strava"
)

// ErrMissingField indicates an activity lacks a field the printer needs.
var ErrMissingField = errors.New("activity field missing")

// Printer writes activities as plain text lines.
type Printer struct{}

// Print writes a count header and one "name - type - distance m" line per activity.
// It stops at the first activity missing a required field; earlier lines stay written.
func (Printer) Print(w io.Writer, activities strava.Activities) error {
	if _, err := fmt.Fprintf(w, "\nDownloaded %d activities\n", len(activities)); err != nil {
		return err
	}

	for i, activity := range activities {
		name, ok := activity.Name()
		if !ok {
			return missing("name", i)
		}
		activityType, ok := activity.Type()
		if !ok {
			return missing("type", i)
		}
		distance, ok := activity.Distance()
		if !ok {
			return missing("distance", i)
		}
		if _, err := fmt.Fprintf(w, "%s - %s - %sm\n", name, activityType, distance); err != nil {
			return err
		}
	}
	return nil
}

func missing(field string, index int) error {
	return fmt.Errorf("%w: %q in activity %d", ErrMissingField, field, index)
}

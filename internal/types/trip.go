// README: Common trip request value object used across modules.
package types

import (
	"errors"
	"time"
)

var (
	ErrMissingDestination = errors.New("destination is required")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrRangeTooLong       = errors.New("date range exceeds 14 days")
	ErrInvalidBudget      = errors.New("budget must be positive")
)

// TripRequest is the immutable input of one planning run, built from
// the submitted form and discarded when the run ends.
type TripRequest struct {
	Destination string    `json:"destination"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Budget      float64   `json:"budget"`
	Tags        []string  `json:"tags"`
}

// Days returns the inclusive day count of the range. A same-day trip
// is one day.
func (r TripRequest) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Validate checks the request before any external call is made.
func (r TripRequest) Validate() error {
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if r.End.Before(r.Start) {
		return ErrInvalidDateRange
	}
	if r.Days() > 14 {
		return ErrRangeTooLong
	}
	if r.Budget < 0 {
		return ErrInvalidBudget
	}
	return nil
}

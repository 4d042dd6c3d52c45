// README: Itinerary Composer types; ParseError preserves raw model text for the fallback path.
package itinerary

import (
	"fmt"
	"time"
)

// Activity is one time-slotted entry of a day plan. Place references a
// discovered candidate by name when the model used one.
type Activity struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
	Place       string `json:"place,omitempty"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the final day-wise plan of a run. Rendered once and
// never persisted.
type Itinerary struct {
	Destination string    `json:"destination"`
	Days        []DayPlan `json:"days"`
	// Notes carries the weather summary the plan was built against.
	Notes string `json:"notes,omitempty"`
}

// ParseError means the model answered but the response did not match
// the expected day-wise structure. Raw keeps the text so the surface
// can show it instead of dropping the run's output.
type ParseError struct {
	Raw   string
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("itinerary: response does not match day-wise structure: %v", e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

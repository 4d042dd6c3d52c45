// README: Weather Advisor types; classification result consumed by discovery and itinerary.
package forecast

import (
	"context"
	"time"

	"wayfare/internal/weather"
)

// Classification tags a trip's weather. An explicit enum rather than a
// bool so both branches are visible at call sites and in tests.
type Classification string

const (
	Favorable   Classification = "favorable"
	Unfavorable Classification = "unfavorable"
)

// DayOutlook is the advisor's verdict for one day of the trip.
type DayOutlook struct {
	Date              time.Time
	MinTempC          float64
	MaxTempC          float64
	PrecipProbability float64
	ConditionCode     int
	Description       string
	// Extrapolated marks days beyond the provider's forecast horizon,
	// which reuse the last forecastable day.
	Extrapolated bool
}

// Assessment is the full output of the Weather Advisor for a request.
// Created once per run and discarded with it.
type Assessment struct {
	Destination    string
	Start, End     time.Time
	Classification Classification
	Summary        string
	Days           []DayOutlook
	// Suggestions from the advisor, surfaced when later stages fail or
	// when the classification is unfavorable.
	Suggestions []string
}

// Source is the weather backend the advisor reads from. Satisfied by
// *weather.Client; any provider with a geocode + daily forecast shape fits.
type Source interface {
	Geocode(ctx context.Context, city string) (weather.Location, error)
	Forecast(ctx context.Context, loc weather.Location) ([]weather.DayForecast, error)
}

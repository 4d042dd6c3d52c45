// README: Weather domain types shared by the OpenWeather client and the forecast module.
package weather

import (
	"errors"
	"time"
)

// ErrLocationNotFound is returned when the destination cannot be geocoded.
var ErrLocationNotFound = errors.New("could not resolve location")

// Location is a geocoded destination.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}

// DayForecast is one forecastable day, aggregated from the provider's
// finer-grained slots.
type DayForecast struct {
	Date              time.Time
	MinTempC          float64
	MaxTempC          float64
	PrecipProbability float64 // 0..1, worst slot of the day
	ConditionCode     int     // provider condition code of the wettest slot
	Description       string
}

// README: Weather Advisor service; geocodes the destination and classifies the date range.
package forecast

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"wayfare/internal/config"
	"wayfare/internal/weather"
)

//go:embed conditions.yaml
var conditionsYAML []byte

type conditionTable struct {
	Groups []struct {
		Code   int    `yaml:"code"`
		Label  string `yaml:"label"`
		Severe bool   `yaml:"severe"`
	} `yaml:"groups"`
}

// Service implements the Weather Advisor stage.
type Service struct {
	source     Source
	thresholds config.ForecastConfig
	severe     map[int]bool
}

// NewService builds the advisor. Thresholds come from config so the
// unfavorable cutoff stays tunable without a rebuild.
func NewService(source Source, thresholds config.ForecastConfig) (*Service, error) {
	var table conditionTable
	if err := yaml.Unmarshal(conditionsYAML, &table); err != nil {
		return nil, fmt.Errorf("forecast: parse condition table: %w", err)
	}
	severe := make(map[int]bool, len(table.Groups))
	for _, g := range table.Groups {
		severe[g.Code] = g.Severe
	}
	return &Service{source: source, thresholds: thresholds, severe: severe}, nil
}

// Assess geocodes the destination, pulls the forecast, and classifies
// the date range. One failed call surfaces directly; there are no
// retries. Same destination, range, and thresholds always produce the
// same classification.
func (s *Service) Assess(ctx context.Context, destination string, start, end time.Time) (Assessment, error) {
	loc, err := s.source.Geocode(ctx, destination)
	if err != nil {
		return Assessment{}, err
	}

	days, err := s.source.Forecast(ctx, loc)
	if err != nil {
		return Assessment{}, err
	}

	outlooks := projectRange(days, start, end)
	if len(outlooks) == 0 {
		return Assessment{}, fmt.Errorf("forecast: no forecastable day in range %s..%s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	assessment := Assessment{
		Destination: loc.Name,
		Start:       start,
		End:         end,
		Days:        outlooks,
	}
	assessment.Classification, assessment.Summary = s.classify(outlooks)
	if assessment.Classification == Unfavorable {
		assessment.Suggestions = []string{
			"consider alternative dates",
			"plan indoor activities",
			"look at nearby destinations with better conditions",
		}
	}
	return assessment, nil
}

// projectRange maps forecast days onto the requested range. Days past
// the provider's horizon reuse the last forecastable day, marked as
// extrapolated. Days are keyed by calendar date in UTC.
func projectRange(days []weather.DayForecast, start, end time.Time) []DayOutlook {
	byDate := make(map[string]weather.DayForecast, len(days))
	for _, d := range days {
		byDate[d.Date.Format("2006-01-02")] = d
	}

	var outlooks []DayOutlook
	var last *weather.DayForecast
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		df, ok := byDate[d.Format("2006-01-02")]
		if ok {
			last = &df
		} else if last != nil {
			df = *last
		} else {
			continue
		}
		outlooks = append(outlooks, DayOutlook{
			Date:              d,
			MinTempC:          df.MinTempC,
			MaxTempC:          df.MaxTempC,
			PrecipProbability: df.PrecipProbability,
			ConditionCode:     df.ConditionCode,
			Description:       df.Description,
			Extrapolated:      !ok,
		})
	}

	// A trip entirely beyond the horizon still gets an outlook from the
	// last forecastable day, the closest signal available.
	if len(outlooks) == 0 && len(days) > 0 {
		tail := days[len(days)-1]
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			outlooks = append(outlooks, DayOutlook{
				Date:              d,
				MinTempC:          tail.MinTempC,
				MaxTempC:          tail.MaxTempC,
				PrecipProbability: tail.PrecipProbability,
				ConditionCode:     tail.ConditionCode,
				Description:       tail.Description,
				Extrapolated:      true,
			})
		}
	}
	return outlooks
}

func (s *Service) classify(outlooks []DayOutlook) (Classification, string) {
	var reasons []string
	for _, day := range outlooks {
		date := day.Date.Format("Jan 2")
		if day.PrecipProbability > s.thresholds.MaxPrecipProbability {
			reasons = append(reasons, fmt.Sprintf("%s: %.0f%% chance of %s", date, day.PrecipProbability*100, orDefault(day.Description, "precipitation")))
		}
		if day.MaxTempC > s.thresholds.MaxTempC {
			reasons = append(reasons, fmt.Sprintf("%s: extreme heat (%.0f°C)", date, day.MaxTempC))
		}
		if day.MinTempC < s.thresholds.MinTempC {
			reasons = append(reasons, fmt.Sprintf("%s: extreme cold (%.0f°C)", date, day.MinTempC))
		}
	}
	if severe := s.severeDays(outlooks); len(severe) > 0 {
		reasons = append(reasons, severe...)
	}

	if len(reasons) > 0 {
		return Unfavorable, "Unfavorable conditions: " + strings.Join(reasons, "; ")
	}
	return Favorable, summarize(outlooks)
}

func (s *Service) severeDays(outlooks []DayOutlook) []string {
	var reasons []string
	for _, day := range outlooks {
		// Condition codes are grouped by leading digit (2xx thunderstorm,
		// 6xx snow, ...); the embedded table marks which groups are severe
		// on their own.
		if day.ConditionCode == 0 {
			continue
		}
		if s.severe[day.ConditionCode/100] {
			reasons = append(reasons, fmt.Sprintf("%s: %s", day.Date.Format("Jan 2"), day.Description))
		}
	}
	return reasons
}

func summarize(outlooks []DayOutlook) string {
	first := outlooks[0]
	return fmt.Sprintf("Favorable conditions: %s, %.0f–%.0f°C over %d day(s)",
		orDefault(first.Description, "mild weather"), first.MinTempC, first.MaxTempC, len(outlooks))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

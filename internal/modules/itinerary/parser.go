// README: Parser for the model's day-wise JSON response.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type rawPlan struct {
	Days []struct {
		Day        int    `json:"day"`
		Date       string `json:"date"`
		Activities []struct {
			StartTime   string `json:"start_time"`
			EndTime     string `json:"end_time"`
			Description string `json:"description"`
			Place       string `json:"place"`
		} `json:"activities"`
	} `json:"days"`
}

// cleanResponse strips markdown fences the model sometimes adds even
// in JSON mode.
func cleanResponse(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}

// parsePlan converts the raw model text into an Itinerary with exactly
// dayCount day-plans. Structural mismatches come back as *ParseError
// carrying the raw text; days the model skipped are padded with a
// free-time day rather than failing the run.
func parsePlan(raw string, destination string, start time.Time, dayCount int) (Itinerary, error) {
	clean := cleanResponse(raw)

	var plan rawPlan
	if err := json.Unmarshal([]byte(clean), &plan); err != nil {
		return Itinerary{}, &ParseError{Raw: raw, cause: err}
	}
	if len(plan.Days) == 0 {
		return Itinerary{}, &ParseError{Raw: raw, cause: fmt.Errorf("no days in response")}
	}

	byDay := map[int]DayPlan{}
	for _, d := range plan.Days {
		if d.Day < 1 || d.Day > dayCount {
			continue
		}
		dp := DayPlan{Day: d.Day, Date: start.AddDate(0, 0, d.Day-1)}
		for _, a := range d.Activities {
			if strings.TrimSpace(a.Description) == "" {
				continue
			}
			dp.Activities = append(dp.Activities, Activity{
				StartTime:   a.StartTime,
				EndTime:     a.EndTime,
				Description: a.Description,
				Place:       a.Place,
			})
		}
		if len(dp.Activities) > 0 {
			byDay[d.Day] = dp
		}
	}
	if len(byDay) == 0 {
		return Itinerary{}, &ParseError{Raw: raw, cause: fmt.Errorf("no usable activities in response")}
	}

	it := Itinerary{Destination: destination}
	for day := 1; day <= dayCount; day++ {
		dp, ok := byDay[day]
		if !ok {
			dp = freeDay(day, start)
		}
		it.Days = append(it.Days, dp)
	}
	return it, nil
}

func freeDay(day int, start time.Time) DayPlan {
	return DayPlan{
		Day:  day,
		Date: start.AddDate(0, 0, day-1),
		Activities: []Activity{{
			StartTime:   "09:00",
			EndTime:     "18:00",
			Description: "Free time: explore the area at your own pace",
		}},
	}
}

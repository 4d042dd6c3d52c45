// README: Prompt construction for the itinerary model call.
package itinerary

import (
	"fmt"
	"strings"

	"wayfare/internal/modules/forecast"
	"wayfare/internal/search"
	"wayfare/internal/types"
)

const responseSchema = `{
  "days": [
    {
      "day": 1,
      "date": "2026-09-01",
      "activities": [
        {"start_time": "09:00", "end_time": "11:00", "description": "what to do", "place": "candidate name or empty"}
      ]
    }
  ]
}`

// BuildPrompt embeds the whole run context into a single instruction:
// the request, the weather classification, and the candidate list.
// There is exactly one model call per run.
func BuildPrompt(req types.TripRequest, assessment forecast.Assessment, candidates []search.Candidate) string {
	var b strings.Builder
	days := req.Days()

	fmt.Fprintf(&b, "Create a %d-day travel itinerary for %s, %s to %s.\n",
		days, req.Destination, req.Start.Format("2006-01-02"), req.End.Format("2006-01-02"))
	if req.Budget > 0 {
		fmt.Fprintf(&b, "Total budget: %.0f USD.\n", req.Budget)
	}
	if len(req.Tags) > 0 {
		fmt.Fprintf(&b, "Traveler preferences: %s.\n", strings.Join(req.Tags, ", "))
	}

	fmt.Fprintf(&b, "\nWeather for the trip is %s. %s\n", assessment.Classification, assessment.Summary)
	if assessment.Classification == forecast.Unfavorable {
		b.WriteString("Favor indoor activities and keep outdoor slots short.\n")
	}

	if len(candidates) > 0 {
		b.WriteString("\nUse these places where they fit (reference them by exact name in \"place\"):\n")
		for _, c := range candidates {
			fmt.Fprintf(&b, "- [%s] %s", c.Category, c.Name)
			if c.PriceIndicator != "" {
				fmt.Fprintf(&b, " (%s)", c.PriceIndicator)
			}
			if c.Description != "" {
				fmt.Fprintf(&b, ": %s", c.Description)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("\nNo specific hotels or attractions were found for this request. ")
		b.WriteString("Produce a general plan for the destination anyway, with typical activities a visitor would enjoy, and leave \"place\" empty.\n")
	}

	fmt.Fprintf(&b, `
Hard constraints:
- Exactly %d entries in "days", day numbered 1..%d with no gaps.
- Dates start at %s, one calendar day per entry.
- 2 to 5 activities per day, times formatted HH:MM, start_time < end_time, no overlaps.
- Return JSON only, matching this schema exactly. No comments, no markdown.

Schema:
%s
`, days, days, req.Start.Format("2006-01-02"), responseSchema)

	return b.String()
}

// README: Trip Orchestrator types and the contracts of the three pipeline stages.
package trip

import (
	"context"
	"time"

	"wayfare/internal/modules/forecast"
	"wayfare/internal/modules/itinerary"
	"wayfare/internal/search"
	"wayfare/internal/trace"
	"wayfare/internal/types"
)

// Stage names the pipeline step a result (or failure) belongs to.
type Stage string

const (
	StageValidate  Stage = "validate"
	StageWeather   Stage = "weather"
	StageDiscovery Stage = "discovery"
	StageCompose   Stage = "compose"
)

// Status is the outcome of a run. There is no partial-success state:
// a run either produced an itinerary or failed at a named stage.
type Status string

const (
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

// Result is everything one planning run produced. Failed runs keep the
// partial outputs of the stages that did succeed, so the surface can
// still show the weather assessment or the raw model text.
type Result struct {
	RunID      string              `json:"run_id"`
	Status     Status              `json:"status"`
	Stage      Stage               `json:"stage"`
	Assessment forecast.Assessment `json:"assessment"`
	Candidates []search.Candidate  `json:"candidates,omitempty"`
	Itinerary  itinerary.Itinerary `json:"itinerary"`
	// RawFallback holds the model's unstructured text when the compose
	// stage answered but the response could not be parsed.
	RawFallback string   `json:"raw_fallback,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Advisor is the weather stage. Satisfied by *forecast.Service.
type Advisor interface {
	Assess(ctx context.Context, destination string, start, end time.Time) (forecast.Assessment, error)
}

// Discoverer is the search stage. Satisfied by *discovery.Service.
type Discoverer interface {
	Discover(ctx context.Context, destination string, tags []string, assessment forecast.Assessment) ([]search.Candidate, error)
}

// Composer is the itinerary stage. Satisfied by *itinerary.Service.
type Composer interface {
	Compose(ctx context.Context, req types.TripRequest, assessment forecast.Assessment, candidates []search.Candidate) (itinerary.Itinerary, error)
}

// Tracer records run events. Satisfied by *trace.Recorder; a nil
// recorder is a valid no-op tracer.
type Tracer interface {
	Record(ev trace.Event)
}

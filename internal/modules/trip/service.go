// README: Trip Orchestrator; runs validate -> weather -> discovery -> compose strictly in order.
package trip

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/modules/itinerary"
	"wayfare/internal/trace"
	"wayfare/internal/types"
)

// Service wires the three stages into one sequential, stateless
// pipeline. Each external stage runs under its own timeout; a failed
// stage stops the run immediately, with no retries and no fallback to
// a degraded plan.
type Service struct {
	advisor     Advisor
	discoverer  Discoverer
	composer    Composer
	tracer      Tracer
	callTimeout time.Duration
}

func NewService(advisor Advisor, discoverer Discoverer, composer Composer, tracer Tracer, callTimeout time.Duration) *Service {
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &Service{
		advisor:     advisor,
		discoverer:  discoverer,
		composer:    composer,
		tracer:      tracer,
		callTimeout: callTimeout,
	}
}

// Plan executes one run end to end. The returned Result always names
// the stage the run reached; on failure it keeps whatever the earlier
// stages produced so the caller can surface it. A run never ends as a
// silent no-op: there is either an itinerary or an error.
func (s *Service) Plan(ctx context.Context, req types.TripRequest) (Result, error) {
	res := Result{RunID: uuid.NewString(), Status: StatusFailed, Stage: StageValidate}
	runStart := time.Now()

	if err := req.Validate(); err != nil {
		return res, fmt.Errorf("trip: invalid request: %w", err)
	}

	res.Stage = StageWeather
	stageCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	assessment, err := s.advisor.Assess(stageCtx, req.Destination, req.Start, req.End)
	cancel()
	s.record(res.RunID, StageWeather, runStart, map[string]any{"destination": req.Destination}, err)
	if err != nil {
		return res, err
	}
	res.Assessment = assessment
	res.Suggestions = assessment.Suggestions

	res.Stage = StageDiscovery
	discStart := time.Now()
	stageCtx, cancel = context.WithTimeout(ctx, s.callTimeout)
	candidates, err := s.discoverer.Discover(stageCtx, req.Destination, req.Tags, assessment)
	cancel()
	s.record(res.RunID, StageDiscovery, discStart, map[string]any{
		"destination": req.Destination,
		"weather":     string(assessment.Classification),
	}, err)
	if err != nil {
		return res, err
	}
	res.Candidates = candidates

	res.Stage = StageCompose
	composeStart := time.Now()
	stageCtx, cancel = context.WithTimeout(ctx, s.callTimeout)
	plan, err := s.composer.Compose(stageCtx, req, assessment, candidates)
	cancel()
	s.record(res.RunID, StageCompose, composeStart, map[string]any{
		"days":       req.Days(),
		"candidates": len(candidates),
	}, err)
	if err != nil {
		var pe *itinerary.ParseError
		if errors.As(err, &pe) {
			res.RawFallback = pe.Raw
		}
		return res, err
	}

	res.Itinerary = plan
	res.Status = StatusComplete
	s.tracer.Record(trace.Event{
		RunID: res.RunID,
		Name:  "plan_trip",
		Start: runStart,
		End:   time.Now(),
		Inputs: map[string]any{
			"destination": req.Destination,
			"start":       req.Start.Format("2006-01-02"),
			"end":         req.End.Format("2006-01-02"),
		},
		Output: map[string]any{"status": string(res.Status), "days": len(plan.Days)},
	})
	log.Printf("trip: run %s complete: %d day(s) for %s", res.RunID, len(plan.Days), req.Destination)
	return res, nil
}

// record ships one stage event to the tracer and logs failures.
func (s *Service) record(runID string, stage Stage, start time.Time, inputs map[string]any, err error) {
	s.tracer.Record(trace.Event{
		RunID:  uuid.NewString(),
		Parent: runID,
		Name:   string(stage),
		Start:  start,
		End:    time.Now(),
		Inputs: inputs,
		Err:    err,
	})
	if err != nil {
		log.Printf("trip: run %s failed at %s: %v", runID, stage, err)
	}
}

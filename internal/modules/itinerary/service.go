// README: Itinerary Composer; one prompt, one model call, one parsed day-wise plan.
package itinerary

import (
	"context"
	"fmt"
	"log"

	"wayfare/internal/ai"
	"wayfare/internal/modules/forecast"
	"wayfare/internal/search"
	"wayfare/internal/types"
)

// Service implements the Itinerary Composer stage.
type Service struct {
	provider ai.Provider
}

func NewService(provider ai.Provider) *Service {
	return &Service{provider: provider}
}

// Compose builds the prompt, calls the model once, and parses the
// response. A provider failure surfaces as a wrapped error; a
// malformed response surfaces as *ParseError with the raw text kept
// for the fallback path. No partial results are cached between runs.
func (s *Service) Compose(ctx context.Context, req types.TripRequest, assessment forecast.Assessment, candidates []search.Candidate) (Itinerary, error) {
	prompt := BuildPrompt(req, assessment, candidates)

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return Itinerary{}, fmt.Errorf("itinerary: %s: %w", s.provider.Name(), err)
	}

	it, err := parsePlan(raw, req.Destination, req.Start, req.Days())
	if err != nil {
		log.Printf("itinerary: unparseable %s response: %v", s.provider.Name(), err)
		return Itinerary{}, err
	}

	it.Notes = assessment.Summary
	return it, nil
}

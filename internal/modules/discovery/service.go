// README: Discovery Engine; shapes hotel/attraction queries and passes results through.
package discovery

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wayfare/internal/modules/forecast"
	"wayfare/internal/search"
)

// Service implements the Discovery Engine stage. It is a passthrough
// with query shaping only: no deduplication or ranking beyond what the
// search backend already did.
type Service struct {
	searcher Searcher
}

func NewService(searcher Searcher) *Service {
	return &Service{searcher: searcher}
}

// BuildQueries shapes the hotel and attraction queries for a request.
// Unfavorable weather biases the attraction query toward indoor options.
func BuildQueries(destination string, tags []string, classification forecast.Classification) []Query {
	suffix := ""
	if len(tags) > 0 {
		suffix = " " + strings.Join(tags, " ")
	}

	attractions := fmt.Sprintf("%s attractions%s", destination, suffix)
	if classification == forecast.Unfavorable {
		attractions = fmt.Sprintf("%s indoor attractions%s", destination, suffix)
	}

	return []Query{
		{Text: fmt.Sprintf("%s hotels%s", destination, suffix), Category: search.CategoryHotel},
		{Text: attractions, Category: search.CategoryAttraction},
	}
}

// Discover runs the shaped queries in order and concatenates the
// results. Zero results is not a failure; the composer handles the
// empty case with a general plan.
func (s *Service) Discover(ctx context.Context, destination string, tags []string, assessment forecast.Assessment) ([]search.Candidate, error) {
	var candidates []search.Candidate
	for _, q := range BuildQueries(destination, tags, assessment.Classification) {
		found, err := s.searcher.Search(ctx, q.Text, q.Category)
		if err != nil {
			return nil, fmt.Errorf("discovery: %q: %w", q.Text, err)
		}
		if len(found) == 0 {
			log.Printf("discovery: no results for %q", q.Text)
		}
		candidates = append(candidates, found...)
	}
	return candidates, nil
}

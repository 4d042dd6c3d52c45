// README: Discovery Engine types and the search backend contract.
package discovery

import (
	"context"

	"wayfare/internal/search"
)

// Searcher is the search backend. Satisfied by *search.PlacesClient.
type Searcher interface {
	Search(ctx context.Context, query string, category search.Category) ([]search.Candidate, error)
}

// Query is one shaped search request, kept visible for tests and traces.
type Query struct {
	Text     string
	Category search.Category
}

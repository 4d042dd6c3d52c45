// README: Google Places text-search client mapped to Candidate records.
package search

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// PlacesClient queries the Google Places text-search API. Any search
// service returning (title, snippet, link) tuples is substitutable
// behind the discovery module's Searcher interface.
type PlacesClient struct {
	client     *maps.Client
	maxResults int
}

// NewPlacesClient creates a PlacesClient with the given API key.
func NewPlacesClient(apiKey string, maxResults int) (*PlacesClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("search: create maps client: %w", err)
	}
	if maxResults <= 0 {
		maxResults = 8
	}
	return &PlacesClient{client: client, maxResults: maxResults}, nil
}

// Search runs a free-text query and maps the results. Zero hits is not
// an error; the caller gets an empty slice and decides what to do.
func (c *PlacesClient) Search(ctx context.Context, query string, category Category) ([]Candidate, error) {
	resp, err := c.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("search: places api: %w", err)
	}

	var results []Candidate
	for _, r := range resp.Results {
		if len(results) >= c.maxResults {
			break
		}
		results = append(results, Candidate{
			Name:           r.Name,
			Category:       category,
			PriceIndicator: priceIndicator(r.PriceLevel),
			Description:    describe(r.FormattedAddress, r.Types),
			Link:           "https://www.google.com/maps/place/?q=place_id:" + r.PlaceID,
			Rating:         r.Rating,
		})
	}
	return results, nil
}

func priceIndicator(level int) string {
	if level <= 0 || level > 4 {
		return ""
	}
	return strings.Repeat("$", level)
}

// describe builds a short snippet from the address and the first
// human-readable place type.
func describe(address string, types []string) string {
	for _, t := range types {
		switch t {
		case "point_of_interest", "establishment":
			continue
		}
		label := strings.ReplaceAll(t, "_", " ")
		if address != "" {
			return label + ", " + address
		}
		return label
	}
	return address
}

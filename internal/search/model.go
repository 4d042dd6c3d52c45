// README: Search domain types; Candidate is what the discovery stage hands downstream.
package search

// Category tells the composer whether a candidate is somewhere to stay
// or something to do.
type Category string

const (
	CategoryHotel      Category = "hotel"
	CategoryAttraction Category = "attraction"
)

// Candidate is a single hotel or attraction suggestion. Produced once
// per run and consumed once by the itinerary composer; never persisted.
type Candidate struct {
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	PriceIndicator string   `json:"price_indicator"` // "$".."$$$$", empty when unknown
	Description    string   `json:"description"`
	Link           string   `json:"link"`
	Rating         float32  `json:"rating,omitempty"`
}

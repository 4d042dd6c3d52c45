package itinerary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wayfare/internal/modules/forecast"
	"wayfare/internal/search"
	"wayfare/internal/types"
)

type fakeProvider struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func (f *fakeProvider) Name() string { return "fake" }

func testRequest() types.TripRequest {
	return types.TripRequest{
		Destination: "Paris",
		Start:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		Budget:      1200,
		Tags:        []string{"museums"},
	}
}

func TestCompose(t *testing.T) {
	p := &fakeProvider{reply: twoDayJSON}
	svc := NewService(p)

	assessment := forecast.Assessment{
		Classification: forecast.Favorable,
		Summary:        "Mild and dry for the whole stay.",
	}
	candidates := []search.Candidate{
		{Name: "Louvre Museum", Category: search.CategoryAttraction, Description: "art museum"},
		{Name: "Hotel du Nord", Category: search.CategoryHotel, PriceIndicator: "$$"},
	}

	it, err := svc.Compose(context.Background(), testRequest(), assessment, candidates)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(it.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(it.Days))
	}
	if it.Notes != assessment.Summary {
		t.Errorf("Notes = %q, want weather summary", it.Notes)
	}
	for _, want := range []string{"Paris", "2-day", "Louvre Museum", "Hotel du Nord", "museums", "1200"} {
		if !strings.Contains(p.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCompose_UnfavorableWeatherBiasesPrompt(t *testing.T) {
	p := &fakeProvider{reply: twoDayJSON}
	svc := NewService(p)

	assessment := forecast.Assessment{
		Classification: forecast.Unfavorable,
		Summary:        "Heavy rain expected on both days.",
	}
	if _, err := svc.Compose(context.Background(), testRequest(), assessment, nil); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(p.prompt, "indoor") {
		t.Errorf("prompt for unfavorable weather should mention indoor activities:\n%s", p.prompt)
	}
}

func TestCompose_EmptyCandidatesStillPlans(t *testing.T) {
	p := &fakeProvider{reply: twoDayJSON}
	svc := NewService(p)

	it, err := svc.Compose(context.Background(), testRequest(), forecast.Assessment{Classification: forecast.Favorable}, nil)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(it.Days) == 0 {
		t.Fatal("expected a non-empty itinerary without candidates")
	}
	if !strings.Contains(p.prompt, "general plan") {
		t.Errorf("prompt should ask for a general plan when no candidates exist")
	}
}

func TestCompose_ProviderFailure(t *testing.T) {
	boom := errors.New("quota exhausted")
	svc := NewService(&fakeProvider{err: boom})

	_, err := svc.Compose(context.Background(), testRequest(), forecast.Assessment{}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped provider error", err)
	}
}

func TestCompose_UnparseableResponseKeepsRawText(t *testing.T) {
	const raw = "Here is your trip! Day 1: walk around."
	svc := NewService(&fakeProvider{reply: raw})

	_, err := svc.Compose(context.Background(), testRequest(), forecast.Assessment{}, nil)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Raw != raw {
		t.Errorf("Raw = %q, want the model's original text", pe.Raw)
	}
}

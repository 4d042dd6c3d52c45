// README: One-shot CLI planner; runs the full pipeline once and prints the itinerary as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	"wayfare/internal/modules/discovery"
	"wayfare/internal/modules/forecast"
	"wayfare/internal/modules/itinerary"
	"wayfare/internal/modules/trip"
	"wayfare/internal/search"
	"wayfare/internal/trace"
	"wayfare/internal/types"
	"wayfare/internal/weather"
)

func main() {
	destination := flag.String("destination", "", "where to go")
	start := flag.String("start", "", "start date, YYYY-MM-DD")
	end := flag.String("end", "", "end date, YYYY-MM-DD")
	budget := flag.Float64("budget", 0, "total budget in USD")
	tags := flag.String("tags", "", "comma-separated interests")
	flag.Parse()

	if *destination == "" || *start == "" || *end == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	startDate, err := time.Parse("2006-01-02", *start)
	if err != nil {
		log.Fatalf("bad -start: %v", err)
	}
	endDate, err := time.Parse("2006-01-02", *end)
	if err != nil {
		log.Fatalf("bad -end: %v", err)
	}

	req := types.TripRequest{
		Destination: *destination,
		Start:       startDate,
		End:         endDate,
		Budget:      *budget,
	}
	for _, t := range strings.Split(*tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			req.Tags = append(req.Tags, t)
		}
	}

	ctx := context.Background()

	weatherClient := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.CallTimeout)
	advisor, err := forecast.NewService(weatherClient, cfg.Forecast)
	if err != nil {
		log.Fatal(err)
	}
	placesClient, err := search.NewPlacesClient(cfg.Search.MapsKey, cfg.Search.MaxResults)
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	var provider ai.Provider
	switch cfg.AI.Provider {
	case "openai":
		provider = ai.NewOpenAIProvider(cfg.AI.OpenAIKey, cfg.AI.Model)
	default:
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		provider = gemini
	}

	recorder := trace.NewRecorder(cfg.Trace.Endpoint, cfg.Trace.APIKey, cfg.Trace.Project)
	planner := trip.NewService(advisor, discovery.NewService(placesClient), itinerary.NewService(provider), recorder, cfg.CallTimeout)

	res, err := planner.Plan(ctx, req)
	if err != nil {
		if res.RawFallback != "" {
			fmt.Fprintln(os.Stderr, res.RawFallback)
		}
		log.Fatalf("plan failed at %s: %v", res.Stage, err)
	}

	out, err := json.MarshalIndent(res.Itinerary, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

// README: Entry point; loads config, wires the planning pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	httptransport "wayfare/internal/http"
	"wayfare/internal/modules/discovery"
	"wayfare/internal/modules/forecast"
	"wayfare/internal/modules/itinerary"
	"wayfare/internal/modules/trip"
	"wayfare/internal/search"
	"wayfare/internal/trace"
	"wayfare/internal/weather"
)

func main() {
	// .env is a local convenience; production reads the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	weatherClient := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.CallTimeout)
	advisor, err := forecast.NewService(weatherClient, cfg.Forecast)
	if err != nil {
		log.Fatal(err)
	}

	placesClient, err := search.NewPlacesClient(cfg.Search.MapsKey, cfg.Search.MaxResults)
	if err != nil {
		log.Fatalf("places init: %v", err)
	}
	discoverer := discovery.NewService(placesClient)

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
	composer := itinerary.NewService(provider)

	recorder := trace.NewRecorder(cfg.Trace.Endpoint, cfg.Trace.APIKey, cfg.Trace.Project)
	planner := trip.NewService(advisor, discoverer, composer, recorder, cfg.CallTimeout)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(planner)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("wayfare listening on %s (ai provider: %s)", cfg.HTTP.Addr, provider.Name())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

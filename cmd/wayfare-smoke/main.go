// README: Smoke-check runner; exercises a running server's endpoints and prints results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"
)

type Config struct {
	BaseURL     string
	Destination string
	Timeout     time.Duration
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", "http://localhost:8080", "server to check")
	flag.StringVar(&cfg.Destination, "destination", "Paris", "destination for the live plan check")
	flag.DurationVar(&cfg.Timeout, "timeout", 2*time.Minute, "overall deadline")
	flag.Parse()
	return cfg
}

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	runner := NewRunner(cfg)
	results := runner.RunAll(ctx)

	failed := 0
	for _, res := range results {
		if res.Status == "FAIL" {
			failed++
		}
	}
	fmt.Printf("\n%d/%d passed\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}

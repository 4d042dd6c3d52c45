// README: Smoke-check cases; health, error mapping, and one live planning run.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type Case struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 90 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	cases := r.cases()
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		res := c.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, c.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) cases() []Case {
	return []Case{
		{Name: "health endpoint", Run: runHealth},
		{Name: "invalid json is a 400", Run: runInvalidJSON},
		{Name: "bad date is a 400", Run: runBadDate},
		{Name: "unknown destination is a 404", Run: runUnknownDestination},
		{Name: "live plan run", Run: runLivePlan},
	}
}

func runHealth(ctx context.Context, r *Runner) Result {
	status, _, latency, err := r.get(ctx, "/health")
	if err != nil {
		return Result{Name: "health", Status: "FAIL", Note: err.Error()}
	}
	return expectStatus("health", status, http.StatusOK, latency)
}

func runInvalidJSON(ctx context.Context, r *Runner) Result {
	status, _, latency, err := r.post(ctx, "/api/trips/plan", []byte("destination=Paris"))
	if err != nil {
		return Result{Name: "invalid json", Status: "FAIL", Note: err.Error()}
	}
	return expectStatus("invalid json", status, http.StatusBadRequest, latency)
}

func runBadDate(ctx context.Context, r *Runner) Result {
	body, _ := json.Marshal(map[string]any{
		"destination": r.cfg.Destination,
		"start_date":  "tomorrow",
		"end_date":    "2026-09-03",
	})
	status, _, latency, err := r.post(ctx, "/api/trips/plan", body)
	if err != nil {
		return Result{Name: "bad date", Status: "FAIL", Note: err.Error()}
	}
	return expectStatus("bad date", status, http.StatusBadRequest, latency)
}

func runUnknownDestination(ctx context.Context, r *Runner) Result {
	start := time.Now().AddDate(0, 0, 1)
	body, _ := json.Marshal(map[string]any{
		"destination": "Xyzzyville Qwijibo",
		"start_date":  start.Format("2006-01-02"),
		"end_date":    start.AddDate(0, 0, 1).Format("2006-01-02"),
	})
	status, _, latency, err := r.post(ctx, "/api/trips/plan", body)
	if err != nil {
		return Result{Name: "unknown destination", Status: "FAIL", Note: err.Error()}
	}
	return expectStatus("unknown destination", status, http.StatusNotFound, latency)
}

// runLivePlan exercises the whole pipeline against the real upstream
// services, so it needs valid API keys on the server side.
func runLivePlan(ctx context.Context, r *Runner) Result {
	start := time.Now().AddDate(0, 0, 1)
	body, _ := json.Marshal(map[string]any{
		"destination": r.cfg.Destination,
		"start_date":  start.Format("2006-01-02"),
		"end_date":    start.AddDate(0, 0, 2).Format("2006-01-02"),
		"tags":        []string{"food"},
	})
	status, respBody, latency, err := r.post(ctx, "/api/trips/plan", body)
	if err != nil {
		return Result{Name: "live plan", Status: "FAIL", Note: err.Error()}
	}
	if status != http.StatusOK {
		return Result{Name: "live plan", Status: "FAIL", Latency: latency,
			Note: fmt.Sprintf("status %d: %.200s", status, respBody)}
	}

	var envelope struct {
		Data struct {
			Itinerary struct {
				Days []json.RawMessage `json:"days"`
			} `json:"itinerary"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return Result{Name: "live plan", Status: "FAIL", Latency: latency, Note: "unparseable envelope"}
	}
	if len(envelope.Data.Itinerary.Days) != 3 {
		return Result{Name: "live plan", Status: "FAIL", Latency: latency,
			Note: fmt.Sprintf("got %d days, want 3", len(envelope.Data.Itinerary.Days))}
	}
	return Result{Name: "live plan", Status: "PASS", Latency: latency}
}

func expectStatus(name string, got, want int, latency time.Duration) Result {
	if got != want {
		return Result{Name: name, Status: "FAIL", Latency: latency,
			Note: fmt.Sprintf("status %d, want %d", got, want)}
	}
	return Result{Name: name, Status: "PASS", Latency: latency}
}

func (r *Runner) get(ctx context.Context, path string) (int, []byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+path, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	return r.do(req)
}

func (r *Runner) post(ctx context.Context, path string, body []byte) (int, []byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.do(req)
}

func (r *Runner) do(req *http.Request) (int, []byte, time.Duration, error) {
	start := time.Now()
	resp, err := r.httpc.Do(req)
	latency := time.Since(start)
	if err != nil {
		return 0, nil, latency, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	return resp.StatusCode, body, latency, nil
}

// README: Best-effort run recorder; ships per-stage events to a LangSmith-compatible endpoint.
package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Event is one recorded unit of a planning run, either the run itself
// or a single stage of it.
type Event struct {
	RunID  string
	Parent string
	Name   string
	Start  time.Time
	End    time.Time
	Inputs map[string]any
	Output map[string]any
	Err    error
}

// Recorder posts events to the tracing backend. Recording is strictly
// best effort: a failed or slow post is logged and the planning run
// continues untouched.
type Recorder struct {
	endpoint string
	apiKey   string
	project  string
	http     *http.Client
}

func NewRecorder(endpoint, apiKey, project string) *Recorder {
	return &Recorder{
		endpoint: endpoint,
		apiKey:   apiKey,
		project:  project,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

type runPayload struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	RunType     string         `json:"run_type"`
	ParentRunID string         `json:"parent_run_id,omitempty"`
	SessionName string         `json:"session_name"`
	StartTime   string         `json:"start_time"`
	EndTime     string         `json:"end_time"`
	Inputs      map[string]any `json:"inputs,omitempty"`
	Outputs     map[string]any `json:"outputs,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// Record posts one event. Uses its own short deadline so a stalled
// tracing backend can never hold up a run.
func (r *Recorder) Record(ev Event) {
	if r == nil {
		return
	}
	payload := runPayload{
		ID:          ev.RunID,
		Name:        ev.Name,
		RunType:     "chain",
		ParentRunID: ev.Parent,
		SessionName: r.project,
		StartTime:   ev.Start.UTC().Format(time.RFC3339Nano),
		EndTime:     ev.End.UTC().Format(time.RFC3339Nano),
		Inputs:      ev.Inputs,
		Outputs:     ev.Output,
	}
	if payload.ID == "" {
		payload.ID = uuid.NewString()
	}
	if ev.Err != nil {
		payload.Error = ev.Err.Error()
	}

	if err := r.post(payload); err != nil {
		log.Printf("trace: drop event %s: %v", ev.Name, err)
	}
}

func (r *Recorder) post(payload runPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"/runs", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", r.apiKey)

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("post run: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, snippet)
	}
	return nil
}

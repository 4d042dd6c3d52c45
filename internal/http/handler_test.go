package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/itinerary"
	"wayfare/internal/modules/trip"
	"wayfare/internal/types"
	"wayfare/internal/weather"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePlanner struct {
	result trip.Result
	err    error
	got    types.TripRequest
}

func (f *fakePlanner) Plan(_ context.Context, req types.TripRequest) (trip.Result, error) {
	f.got = req
	if f.err != nil {
		return f.result, f.err
	}
	res := f.result
	res.Status = trip.StatusComplete
	return res, nil
}

func completedResult() trip.Result {
	return trip.Result{
		RunID:  "run-1",
		Status: trip.StatusComplete,
		Stage:  trip.StageCompose,
		Itinerary: itinerary.Itinerary{
			Destination: "Paris",
			Days: []itinerary.DayPlan{{
				Day:  1,
				Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				Activities: []itinerary.Activity{{
					StartTime: "09:00", EndTime: "11:00", Description: "Louvre visit", Place: "Louvre Museum",
				}},
			}},
			Notes: "Favorable conditions",
		},
	}
}

func doJSON(t *testing.T, planner Planner, body string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	NewRouter(planner).ServeHTTP(w, req)

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, w.Body.String())
	}
	return w, resp
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	NewRouter(&fakePlanner{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestPlanAPI(t *testing.T) {
	planner := &fakePlanner{result: completedResult()}
	w, resp := doJSON(t, planner, `{
		"destination": "Paris",
		"start_date": "2026-09-01",
		"end_date": "2026-09-03",
		"budget": 1200,
		"tags": ["museums"]
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if resp.Status != "success" {
		t.Errorf("envelope status = %q", resp.Status)
	}
	if resp.TraceID == "" || w.Header().Get("X-Trace-ID") != resp.TraceID {
		t.Errorf("trace id missing or mismatched: %q vs header %q", resp.TraceID, w.Header().Get("X-Trace-ID"))
	}
	if planner.got.Destination != "Paris" || planner.got.Days() != 3 {
		t.Errorf("planner request = %+v", planner.got)
	}
}

func TestPlanAPI_BadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "destination=Paris"},
		{"bad date", `{"destination": "Paris", "start_date": "tomorrow", "end_date": "2026-09-03"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := doJSON(t, &fakePlanner{}, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d", w.Code)
			}
			if resp.Status != "error" || resp.Message == "" {
				t.Errorf("envelope = %+v", resp)
			}
		})
	}
}

func TestPlanAPI_ValidationErrorFromPipeline(t *testing.T) {
	planner := &fakePlanner{err: types.ErrMissingDestination}
	w, _ := doJSON(t, planner, `{"destination": "", "start_date": "2026-09-01", "end_date": "2026-09-03"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestPlanAPI_UnknownDestination(t *testing.T) {
	planner := &fakePlanner{err: weather.ErrLocationNotFound}
	w, resp := doJSON(t, planner, `{"destination": "Xyzzyville", "start_date": "2026-09-01", "end_date": "2026-09-02"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(resp.Message, "could not resolve location") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestPlanAPI_UnparseablePlanCarriesRawText(t *testing.T) {
	planner := &fakePlanner{
		result: trip.Result{
			Status:      trip.StatusFailed,
			Stage:       trip.StageCompose,
			RawFallback: "Day one: have fun.",
		},
		err: &itinerary.ParseError{Raw: "Day one: have fun."},
	}
	w, resp := doJSON(t, planner, `{"destination": "Paris", "start_date": "2026-09-01", "end_date": "2026-09-02"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
	if resp.RawFallback != "Day one: have fun." {
		t.Errorf("raw_fallback = %q", resp.RawFallback)
	}
	if len(resp.Suggestions) == 0 {
		t.Error("error envelope should carry a suggestion")
	}
}

func TestIndexServesForm(t *testing.T) {
	w := httptest.NewRecorder()
	NewRouter(&fakePlanner{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/plan"`) {
		t.Error("index page should contain the planning form")
	}
}

func TestPlanForm(t *testing.T) {
	planner := &fakePlanner{result: completedResult()}
	form := url.Values{
		"destination": {"Paris"},
		"start_date":  {"2026-09-01"},
		"end_date":    {"2026-09-03"},
		"budget":      {"1200"},
		"tags":        {"museums, food"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	NewRouter(planner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Louvre visit") {
		t.Error("result page should list the itinerary activities")
	}
	if len(planner.got.Tags) != 2 {
		t.Errorf("tags = %v, want comma-split pair", planner.got.Tags)
	}
}

func TestPlanForm_ErrorRendersBackIntoForm(t *testing.T) {
	planner := &fakePlanner{
		result: trip.Result{Suggestions: []string{"consider alternative dates"}},
		err:    weather.ErrLocationNotFound,
	}
	form := url.Values{
		"destination": {"Xyzzyville"},
		"start_date":  {"2026-09-01"},
		"end_date":    {"2026-09-02"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	NewRouter(planner).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "consider alternative dates") {
		t.Error("error page should surface the advisor suggestions")
	}
	if !strings.Contains(body, `action="/plan"`) {
		t.Error("error page should keep the form usable")
	}
}

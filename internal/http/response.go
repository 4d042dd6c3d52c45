// README: JSON response envelope and error-to-status mapping.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/itinerary"
	"wayfare/internal/modules/trip"
	"wayfare/internal/types"
	"wayfare/internal/weather"
)

// APIResponse is the envelope of every JSON reply. TraceID ties a
// reply to the server logs and the recorded run.
type APIResponse struct {
	Status      string   `json:"status"`
	Code        int      `json:"code"`
	Message     string   `json:"message,omitempty"`
	TraceID     string   `json:"trace_id,omitempty"`
	Data        any      `json:"data,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	// RawFallback carries the model's unstructured text when the plan
	// could not be parsed, so the client can still show something.
	RawFallback string `json:"raw_fallback,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		TraceID: traceID(c),
		Data:    data,
	})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// planStatusCode maps a pipeline error to its HTTP status. Bad form
// input is the caller's fault, an unknown destination is a lookup
// miss, and everything the upstream services broke on is a bad
// gateway.
func planStatusCode(err error) int {
	switch {
	case errors.Is(err, types.ErrMissingDestination),
		errors.Is(err, types.ErrInvalidDateRange),
		errors.Is(err, types.ErrRangeTooLong),
		errors.Is(err, types.ErrInvalidBudget):
		return http.StatusBadRequest
	case errors.Is(err, weather.ErrLocationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// respondPlanError renders a failed run as JSON, keeping the advisor's
// suggestions and any raw model text the run produced.
func respondPlanError(c *gin.Context, res trip.Result, err error) {
	switch code := planStatusCode(err); code {
	case http.StatusBadRequest:
		respondError(c, code, err.Error())

	case http.StatusNotFound:
		respondError(c, code, "could not resolve location; check the destination spelling")

	default:
		resp := APIResponse{
			Status:      "error",
			Code:        http.StatusBadGateway,
			Message:     err.Error(),
			TraceID:     traceID(c),
			Suggestions: res.Suggestions,
		}
		var pe *itinerary.ParseError
		if errors.As(err, &pe) {
			resp.Message = "the generated plan could not be structured; raw text included"
			resp.RawFallback = res.RawFallback
		} else if errors.Is(err, context.DeadlineExceeded) {
			resp.Message = "an upstream service timed out; try again"
		}
		if len(resp.Suggestions) == 0 {
			resp.Suggestions = []string{"try again in a moment"}
		}
		c.JSON(http.StatusBadGateway, resp)
	}
}

// README: Trip planning handlers; JSON API plus the HTML form surface.
package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/trip"
	"wayfare/internal/types"
)

const dateLayout = "2006-01-02"

// Planner is the orchestrator contract the transport depends on.
// Satisfied by *trip.Service.
type Planner interface {
	Plan(ctx context.Context, req types.TripRequest) (trip.Result, error)
}

type Server struct {
	planner Planner
}

func NewServer(planner Planner) *Server {
	return &Server{planner: planner}
}

type planRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      float64  `json:"budget"`
	Tags        []string `json:"tags"`
}

func (r planRequest) toTripRequest() (types.TripRequest, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return types.TripRequest{}, types.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return types.TripRequest{}, types.ErrInvalidDateRange
	}
	return types.TripRequest{
		Destination: strings.TrimSpace(r.Destination),
		Start:       start,
		End:         end,
		Budget:      r.Budget,
		Tags:        r.Tags,
	}, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePlanAPI(c *gin.Context) {
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json body")
		return
	}
	req, err := body.toTripRequest()
	if err != nil {
		respondError(c, http.StatusBadRequest, "dates must be formatted YYYY-MM-DD")
		return
	}

	res, err := s.planner.Plan(c.Request.Context(), req)
	if err != nil {
		respondPlanError(c, res, err)
		return
	}
	respondOK(c, res)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{})
}

// handlePlanForm serves the classic form submission path: parse the
// fields, run the pipeline, render a page. Errors render back into the
// form page with the advisor's suggestions when there are any.
func (s *Server) handlePlanForm(c *gin.Context) {
	budget, _ := strconv.ParseFloat(c.PostForm("budget"), 64)
	body := planRequest{
		Destination: c.PostForm("destination"),
		StartDate:   c.PostForm("start_date"),
		EndDate:     c.PostForm("end_date"),
		Budget:      budget,
		Tags:        splitTags(c.PostForm("tags")),
	}
	req, err := body.toTripRequest()
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.tmpl", gin.H{
			"Error": "dates must be formatted YYYY-MM-DD",
			"Form":  body,
		})
		return
	}

	res, err := s.planner.Plan(c.Request.Context(), req)
	if err != nil {
		c.HTML(planStatusCode(err), "index.tmpl", gin.H{
			"Error":       err.Error(),
			"Suggestions": res.Suggestions,
			"RawFallback": res.RawFallback,
			"Form":        body,
		})
		return
	}
	c.HTML(http.StatusOK, "plan.tmpl", gin.H{"Result": res})
}

// splitTags accepts comma-separated free text from the form.
func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

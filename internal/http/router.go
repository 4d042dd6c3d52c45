// README: HTTP router registration.
package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"wayfare/internal/http/middleware"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

func NewRouter(planner Planner) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceID(), middleware.Logging(), middleware.Recovery())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	s := NewServer(planner)

	r.GET("/health", s.handleHealth)
	r.POST("/api/trips/plan", s.handlePlanAPI)

	r.GET("/", s.handleIndex)
	r.POST("/plan", s.handlePlanForm)

	return r
}

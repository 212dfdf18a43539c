package web

import (
	"github.com/gin-gonic/gin"

	"github.com/phishinv/phish-investigator/internal/application"
)

// NewRouter wires the investigator HTTP boundary: the HTML pages and
// fragments driving the operator UI, plus the JSON API underneath /api.
// templateGlob points at the HTML templates, e.g. "templates/*".
func NewRouter(service *application.InvestigationService, templateGlob string) *gin.Engine {
	h := &Handler{service: service}

	r := gin.Default()
	r.LoadHTMLGlob(templateGlob)

	// Server-rendered pages and HTMX fragments
	r.GET("/", h.Index)
	r.GET("/recent", h.RecentFragment)
	r.POST("/investigate", h.Investigate)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/investigations", h.ListInvestigations)
		api.POST("/investigations", h.CreateInvestigation)
	}

	return r
}

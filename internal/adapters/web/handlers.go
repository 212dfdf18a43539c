package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phishinv/phish-investigator/internal/application"
	"github.com/phishinv/phish-investigator/internal/domain"
)

// Handler bundles the HTTP handlers for the investigator service
type Handler struct {
	service *application.InvestigationService
}

// Row is one rendered line of the recent-investigations table
type Row struct {
	domain.Investigation
	BadgeClass string
}

// recentData feeds the index page and the recent-table fragment
type recentData struct {
	Rows []Row
}

// Index renders the submission form and the recent-investigations table
func (h *Handler) Index(c *gin.Context) {
	data, err := h.recent(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load investigations")
		return
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// RecentFragment renders the recent-investigations table fragment
func (h *Handler) RecentFragment(c *gin.Context) {
	data, err := h.recent(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load investigations")
		return
	}
	c.HTML(http.StatusOK, "recent.html", data)
}

// Investigate accepts the submission form and returns the updated table
// fragment, or a validation message for malformed input
func (h *Handler) Investigate(c *gin.Context) {
	rawURL := strings.TrimSpace(c.PostForm("url"))

	_, _, err := h.service.Submit(c.Request.Context(), rawURL)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			// 200 so HTMX swaps the message into the target
			c.HTML(http.StatusOK, "error.html", gin.H{"Message": "Not a valid URL."})
			return
		}
		log.Printf("Submission failed for %q: %v", rawURL, err)
		c.String(http.StatusInternalServerError, "submission failed")
		return
	}

	data, err := h.recent(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load investigations")
		return
	}
	c.HTML(http.StatusOK, "recent.html", data)
}

// ListInvestigations returns the most recent records as JSON, newest first
func (h *Handler) ListInvestigations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(application.DefaultRecentLimit)))

	investigations, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, investigations)
}

// createRequest is the JSON submission payload
type createRequest struct {
	URL string `json:"url" binding:"required"`
}

// CreateInvestigation accepts a JSON submission and returns the record with
// its signal breakdown
func (h *Handler) CreateInvestigation(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	inv, hits, err := h.service.Submit(c.Request.Context(), strings.TrimSpace(req.URL))
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"investigation": inv,
		"signals":       hits,
	})
}

func (h *Handler) recent(c *gin.Context) (recentData, error) {
	investigations, err := h.service.Recent(c.Request.Context(), application.DefaultRecentLimit)
	if err != nil {
		return recentData{}, err
	}

	rows := make([]Row, 0, len(investigations))
	for _, inv := range investigations {
		rows = append(rows, Row{Investigation: inv, BadgeClass: badgeClass(inv.Score)})
	}
	return recentData{Rows: rows}, nil
}

// badgeClass picks the score badge styling from the display risk label
func badgeClass(score int) string {
	switch domain.RiskLabel(score) {
	case "danger":
		return "bg-red-600 text-white"
	case "caution":
		return "bg-orange-500 text-white"
	default:
		return "bg-slate-700 text-white"
	}
}

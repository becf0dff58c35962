package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sobi/internal/services"
)

// InsightHandler handles AI insight requests.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GenerateInsights requests fresh insights from the generation service.
// @Summary     Generate insights
// @Description Analyze the user's spending and store freshly generated insights
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Success     201 {array} models.AIInsight "Generated insights"
// @Failure     400 {object} ErrorResponse "No transactions to analyze"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Insight service unavailable"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/generate [post]
func (h *InsightHandler) GenerateInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	insights, err := h.insightService.GenerateInsights(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insights": insights})
}

// GetInsights returns the user's current insights classified into views.
// @Summary     Get insights
// @Description Get non-expired insights classified into all/savings/warnings views
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} analytics.InsightSummary "Insight overview"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *InsightHandler) GetInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.insightService.GetInsightOverview(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

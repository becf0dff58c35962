package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sobi/internal/analytics"
	apperrors "sobi/internal/errors"
	"sobi/internal/services"
)

// DashboardHandler serves the derived spending views.
type DashboardHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(analyticsService services.AnalyticsServicer) *DashboardHandler {
	return &DashboardHandler{analyticsService: analyticsService}
}

// modeQuery binds the ?mode= query parameter, defaulting to daily.
type modeQuery struct {
	Mode analytics.ViewMode `form:"mode,default=daily" binding:"view_mode"`
}

func bindViewMode(c *gin.Context) (analytics.ViewMode, error) {
	var q modeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown view mode")
	}
	return q.Mode, nil
}

// GetSpendingTrend returns zero-filled time buckets for a view mode.
// @Summary     Spending trend
// @Description Get spending bucketed over the last 7 days, 4 weeks, or 4 months
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       mode query string false "daily, weekly, or monthly" default(daily)
// @Param       date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success     200 {object} services.TrendReport "Trend buckets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/trend [get]
func (h *DashboardHandler) GetSpendingTrend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mode, err := bindViewMode(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ref, err := parseRefDate(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.analyticsService.GetSpendingTrend(userID, mode, ref)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCategoryBreakdown returns per-category totals for a view mode's window.
// @Summary     Category breakdown
// @Description Get per-category spending over the window implied by the view mode, largest first
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       mode query string false "daily, weekly, or monthly" default(daily)
// @Param       date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success     200 {object} services.CategoryReport "Category buckets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/categories [get]
func (h *DashboardHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	mode, err := bindViewMode(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ref, err := parseRefDate(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.analyticsService.GetCategoryBreakdown(userID, mode, ref)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetBudgetOverview returns every category's budget status for a month.
// @Summary     Budget overview
// @Description Get the evaluated budget status of every category for a month, plus totals
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true "Month (YYYY-MM)"
// @Success     200 {object} services.BudgetOverview "Budget overview"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/budgets [get]
func (h *DashboardHandler) GetBudgetOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.analyticsService.GetBudgetOverview(userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetMonthlySummary returns the headline spent/remaining figures for a month.
// @Summary     Monthly summary
// @Description Get total spent, budget remaining, and percentage used for a month
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true "Month (YYYY-MM)"
// @Success     200 {object} services.SummaryReport "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.analyticsService.GetMonthlySummary(userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

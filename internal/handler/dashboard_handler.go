package handler

import (
	"github.com/gofiber/fiber/v2"

	"health-screen/internal/middleware"
	"health-screen/internal/service"
	"health-screen/internal/validation"
)

// DashboardHandler serves population statistics.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func periodDays(c *fiber.Ctx) int {
	return validation.TrendPeriods[c.Locals(middleware.ValidatedPeriodKey).(string)]
}

// Stats godoc
// @Summary Overview statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Issues godoc
// @Summary Common issues
// @Description Share of respondents matching each common problem, most frequent first.
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.IssueStat
// @Router /dashboard/issues [get]
func (h *DashboardHandler) Issues(c *fiber.Ctx) error {
	issues, err := h.dashboardService.GetIssues(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(issues)
}

// AgeGroups godoc
// @Summary Scores by age group
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.AgeGroupStat
// @Router /dashboard/age-groups [get]
func (h *DashboardHandler) AgeGroups(c *fiber.Ctx) error {
	groups, err := h.dashboardService.GetAgeGroups(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(groups)
}

// Trend godoc
// @Summary Population trend
// @Description Daily average overall score.
// @Tags dashboard
// @Produce json
// @Param period query string false "7d, 30d or 90d" default(30d)
// @Success 200 {object} domain.PopulationTrend
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /dashboard/trend [get]
func (h *DashboardHandler) Trend(c *fiber.Ctx) error {
	trend, err := h.dashboardService.GetTrend(c.Context(), periodDays(c))
	if err != nil {
		return err
	}
	return c.JSON(trend)
}

// SittingBackPain godoc
// @Summary Sitting time vs back pain
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.SittingBackPainBucket
// @Router /dashboard/correlation/sitting-backpain [get]
func (h *DashboardHandler) SittingBackPain(c *fiber.Ctx) error {
	buckets, err := h.dashboardService.GetSittingBackPain(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(buckets)
}

// Recent godoc
// @Summary Recent submissions
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of rows" default(20)
// @Success 200 {array} domain.RecentSurvey
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /dashboard/recent [get]
func (h *DashboardHandler) Recent(c *fiber.Ctx) error {
	recent, err := h.dashboardService.GetRecent(c.Context(), c.Locals(middleware.ValidatedLimitKey).(int))
	if err != nil {
		return err
	}
	return c.JSON(recent)
}

// Summary godoc
// @Summary Every dashboard aggregate
// @Tags dashboard
// @Produce json
// @Param period query string false "7d, 30d or 90d" default(30d)
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.dashboardService.Summary(c.Context(), periodDays(c))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

package http

import (
	"net/http"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *logger.Logger
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		logger:           logger,
	}
}

// GetDashboardStats godoc
// @Summary      Dashboard statistics
// @Description  Aggregate content counts, trending totals and the per age group story breakdown
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.DashboardStats
// @Failure      500  {object}  map[string]string
// @Router       /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.analyticsUseCase.GetDashboardStats()
	if err != nil {
		h.logger.Error("Failed to build dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

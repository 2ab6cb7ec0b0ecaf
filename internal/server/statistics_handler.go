package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moyan78641/memoria/internal/service"
)

// StatisticsHandler serves the statistics page aggregates.
type StatisticsHandler struct {
	stats *service.StatisticsService
}

func NewStatisticsHandler(stats *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{stats: stats}
}

func (h *StatisticsHandler) Overview(c *gin.Context) {
	o, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *StatisticsHandler) ByType(c *gin.Context) {
	out, err := h.stats.ByType(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatisticsHandler) ByMonth(c *gin.Context) {
	out, err := h.stats.ByMonth(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatisticsHandler) NotifyStats(c *gin.Context) {
	out, err := h.stats.Notify(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, out)
}

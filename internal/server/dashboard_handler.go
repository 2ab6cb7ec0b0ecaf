package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/repository"
	"github.com/moyan78641/memoria/internal/service"
)

// DashboardHandler serves the landing-page summary and the compact memorial
// list the calendar view renders from.
type DashboardHandler struct {
	stats     *service.StatisticsService
	memorials *service.MemorialService
}

func NewDashboardHandler(stats *service.StatisticsService, memorials *service.MemorialService) *DashboardHandler {
	return &DashboardHandler{stats: stats, memorials: memorials}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// dashboardMemorial is the calendar-rendering subset of a memorial.
type dashboardMemorial struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	MemorialType string  `json:"memorial_type"`
	DateMode     string  `json:"date_mode"`
	SolarDate    *string `json:"solar_date"`
	LunarMonth   *int    `json:"lunar_month"`
	LunarDay     *int    `json:"lunar_day"`
	LunarLeap    bool    `json:"lunar_leap"`
	StartYear    *int    `json:"start_year"`
	Person       *string `json:"person"`
	GroupName    *string `json:"group_name"`
}

func (h *DashboardHandler) AllMemorials(c *gin.Context) {
	list, err := h.memorials.List(c.Request.Context(), repository.MemorialFilter{})
	if err != nil {
		fail(c, err, "")
		return
	}

	out := make([]dashboardMemorial, 0, len(list))
	for _, m := range list {
		out = append(out, compact(m))
	}
	c.JSON(http.StatusOK, out)
}

func compact(m model.Memorial) dashboardMemorial {
	return dashboardMemorial{
		ID:           m.ID,
		Name:         m.Name,
		MemorialType: m.MemorialType,
		DateMode:     m.DateMode,
		SolarDate:    m.SolarDate,
		LunarMonth:   m.LunarMonth,
		LunarDay:     m.LunarDay,
		LunarLeap:    m.LunarLeap,
		StartYear:    m.StartYear,
		Person:       m.Person,
		GroupName:    m.GroupName,
	}
}

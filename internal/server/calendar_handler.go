package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moyan78641/memoria/internal/lunar"
)

// CalendarHandler exposes per-day almanac metadata (lunar date, festivals,
// solar term, legal holiday) for calendar and countdown rendering.
type CalendarHandler struct {
	loc *time.Location
}

func NewCalendarHandler(loc *time.Location) *CalendarHandler {
	return &CalendarHandler{loc: loc}
}

// Today returns the almanac info for ?date=YYYY-MM-DD, defaulting to the
// current day in the reference timezone.
func (h *CalendarHandler) Today(c *gin.Context) {
	day := time.Now().In(h.loc)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式错误，应为 YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	c.JSON(http.StatusOK, lunar.Info(day))
}

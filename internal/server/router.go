// Package server wires the REST API. Route tree and response shapes follow
// the dashboard frontend's expectations; errors are returned as
// {"error": message}.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moyan78641/memoria/internal/service"
)

// Handlers bundles the per-resource handler groups the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Memorials     *MemorialHandler
	Notifications *NotificationHandler
	Dashboard     *DashboardHandler
	Statistics    *StatisticsHandler
	Calendar      *CalendarHandler
}

// NewRouter builds the gin engine: public health/auth/metrics endpoints plus
// the token-guarded API.
func NewRouter(h Handlers, auth *service.AuthService) *gin.Engine {
	r := gin.Default()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// Auth routes issue the token and need none.
	api.GET("/auth/status", h.Auth.Status)
	api.POST("/auth/setup", h.Auth.Setup)
	api.POST("/auth/login", h.Auth.Login)

	guarded := api.Group("", AuthMiddleware(auth))
	{
		guarded.POST("/auth/change-password", h.Auth.ChangePassword)

		guarded.GET("/memorials", h.Memorials.List)
		guarded.POST("/memorials", h.Memorials.Create)
		guarded.GET("/memorials/groups", h.Memorials.Groups)
		guarded.GET("/memorials/:id", h.Memorials.Get)
		guarded.PUT("/memorials/:id", h.Memorials.Update)
		guarded.DELETE("/memorials/:id", h.Memorials.Delete)

		guarded.GET("/notifications/reminders/all", h.Notifications.ListAllReminders)
		guarded.GET("/notifications/reminders/:memorialID", h.Notifications.ListReminders)
		guarded.POST("/notifications/reminders/:memorialID", h.Notifications.CreateReminder)
		guarded.DELETE("/notifications/reminders/rule/:id", h.Notifications.DeleteReminder)
		guarded.GET("/notifications/logs", h.Notifications.Logs)
		guarded.GET("/notifications/settings", h.Notifications.Settings)
		guarded.POST("/notifications/settings", h.Notifications.UpdateSettings)
		guarded.POST("/notifications/test-email", h.Notifications.TestEmail)
		guarded.POST("/notifications/test-telegram", h.Notifications.TestTelegram)

		guarded.GET("/dashboard/stats", h.Dashboard.Stats)
		guarded.GET("/dashboard/all-memorials", h.Dashboard.AllMemorials)

		guarded.GET("/statistics/overview", h.Statistics.Overview)
		guarded.GET("/statistics/by-type", h.Statistics.ByType)
		guarded.GET("/statistics/by-month", h.Statistics.ByMonth)
		guarded.GET("/statistics/notify-stats", h.Statistics.NotifyStats)

		guarded.GET("/calendar/today", h.Calendar.Today)

		guarded.GET("/settings/profile", h.Notifications.Profile)
		guarded.POST("/settings/profile", h.Notifications.UpdateProfile)
	}

	return r
}

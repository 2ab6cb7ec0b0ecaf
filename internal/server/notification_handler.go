package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moyan78641/memoria/internal/repository"
	"github.com/moyan78641/memoria/internal/service"
)

// NotificationHandler serves reminder rules, push logs, push settings and
// the profile preferences.
type NotificationHandler struct {
	reminders *service.ReminderService
	settings  *service.SettingsService
	dispatch  *service.DispatchService
	logs      *repository.NotificationLogRepository
}

func NewNotificationHandler(
	reminders *service.ReminderService,
	settings *service.SettingsService,
	dispatch *service.DispatchService,
	logs *repository.NotificationLogRepository,
) *NotificationHandler {
	return &NotificationHandler{
		reminders: reminders,
		settings:  settings,
		dispatch:  dispatch,
		logs:      logs,
	}
}

func (h *NotificationHandler) ListAllReminders(c *gin.Context) {
	list, err := h.reminders.ListAllWithMemorials(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) ListReminders(c *gin.Context) {
	memorialID, ok := uintParam(c, "memorialID")
	if !ok {
		return
	}
	list, err := h.reminders.ListByMemorial(c.Request.Context(), memorialID)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) CreateReminder(c *gin.Context) {
	memorialID, ok := uintParam(c, "memorialID")
	if !ok {
		return
	}
	var body struct {
		DaysBefore int    `json:"days_before"`
		Channel    string `json:"channel"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	rem, err := h.reminders.Create(c.Request.Context(), memorialID, body.DaysBefore, body.Channel)
	if err != nil {
		fail(c, err, "纪念日不存在")
		return
	}
	c.JSON(http.StatusCreated, rem)
}

func (h *NotificationHandler) DeleteReminder(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.reminders.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "提醒规则不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *NotificationHandler) Logs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	logs, err := h.logs.ListRecent(c.Request.Context(), limit)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *NotificationHandler) Settings(c *gin.Context) {
	s, err := h.settings.NotificationSettings(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	var input service.NotificationSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if err := h.settings.UpdateNotificationSettings(c.Request.Context(), input); err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *NotificationHandler) TestEmail(c *gin.Context) {
	if err := h.dispatch.SendTestEmail(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "发送失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "测试邮件已发送"})
}

func (h *NotificationHandler) TestTelegram(c *gin.Context) {
	if err := h.dispatch.SendTestTelegram(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "发送失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "测试消息已发送"})
}

func (h *NotificationHandler) Profile(c *gin.Context) {
	p, err := h.settings.Profile(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *NotificationHandler) UpdateProfile(c *gin.Context) {
	var body struct {
		Nickname string `json:"nickname"`
		Region   string `json:"region"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if err := h.settings.UpdateProfile(c.Request.Context(), body.Nickname, body.Region); err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

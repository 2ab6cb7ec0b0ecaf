package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/moyan78641/memoria/internal/metrics"
	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/notify"
	"github.com/moyan78641/memoria/internal/repository"
)

// Fixed diagnostics recorded when a channel's credentials are missing.
const (
	msgEmailConfigIncomplete    = "邮件配置不完整"
	msgTelegramConfigIncomplete = "Telegram 配置不完整"
)

// DispatchService runs the daily scan over enabled reminder rules and
// delivers the due ones. Reminders are processed one at a time; a failure on
// one never aborts the rest of the batch.
type DispatchService struct {
	memorials *repository.MemorialRepository
	reminders *repository.ReminderRepository
	logs      *repository.NotificationLogRepository
	settings  *repository.SettingRepository
	email     notify.EmailSender
	telegram  notify.TelegramSender
	loc       *time.Location
	logger    *zap.Logger
}

func NewDispatchService(
	memorials *repository.MemorialRepository,
	reminders *repository.ReminderRepository,
	logs *repository.NotificationLogRepository,
	settings *repository.SettingRepository,
	email notify.EmailSender,
	telegram notify.TelegramSender,
	loc *time.Location,
	logger *zap.Logger,
) *DispatchService {
	return &DispatchService{
		memorials: memorials,
		reminders: reminders,
		logs:      logs,
		settings:  settings,
		email:     email,
		telegram:  telegram,
		loc:       loc,
		logger:    logger,
	}
}

// Run evaluates all enabled reminders against today in the reference
// timezone. Invoked once per day by the scheduler; a second invocation on the
// same day simply sends and logs again.
func (s *DispatchService) Run(ctx context.Context) error {
	return s.RunAt(ctx, time.Now().In(s.loc))
}

// RunAt is Run with an explicit "today", which keeps the job testable.
func (s *DispatchService) RunAt(ctx context.Context, today time.Time) error {
	s.logger.Info("dispatch run started", zap.String("date", today.Format("2006-01-02")))
	metrics.DispatchRunsTotal.Inc()

	reminders, err := s.reminders.ListEnabled(ctx)
	if err != nil {
		return fmt.Errorf("load reminders: %w", err)
	}

	// One settings snapshot per run, not per reminder.
	settings, err := s.settings.All(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	for _, rem := range reminders {
		memorial, err := s.memorials.FindByID(ctx, rem.MemorialID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Orphaned rule; routine cleanup debt, not a fault.
				continue
			}
			s.logger.Warn("load memorial failed",
				zap.Uint("memorial_id", rem.MemorialID), zap.Error(err))
			continue
		}

		if !DueOn(memorial, rem.DaysBefore, today) {
			continue
		}

		status, errMsg := s.dispatch(memorial, rem, settings)
		s.record(ctx, memorial, rem.Channel, status, errMsg)
	}

	s.logger.Info("dispatch run finished")
	return nil
}

// dispatch makes a single delivery attempt for one due reminder and returns
// the outcome. Missing credentials short-circuit before any network call.
func (s *DispatchService) dispatch(memorial *model.Memorial, rem model.Reminder, settings map[string]string) (string, string) {
	subject := buildSubject(memorial)
	body := buildMessage(memorial, rem.DaysBefore)

	switch rem.Channel {
	case model.ChannelEmail:
		cfg, ok := emailConfig(settings)
		if !ok {
			return model.StatusFailed, msgEmailConfigIncomplete
		}
		if err := s.email.Send(cfg, subject, body); err != nil {
			return model.StatusFailed, err.Error()
		}
	case model.ChannelTelegram:
		cfg, ok := telegramConfig(settings)
		if !ok {
			return model.StatusFailed, msgTelegramConfigIncomplete
		}
		if err := s.telegram.Send(cfg, body); err != nil {
			return model.StatusFailed, err.Error()
		}
	default:
		return model.StatusFailed, fmt.Sprintf("不支持的通知渠道: %s", rem.Channel)
	}

	return model.StatusSuccess, ""
}

// record appends exactly one log row for a due reminder, whatever the outcome.
func (s *DispatchService) record(ctx context.Context, memorial *model.Memorial, channel, status, errMsg string) {
	entry := &model.NotificationLog{
		MemorialID: memorial.ID,
		Channel:    channel,
		Status:     status,
		SentAt:     time.Now(),
	}
	if errMsg != "" {
		entry.Message = &errMsg
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		s.logger.Error("append notification log failed", zap.Error(err))
	}

	metrics.NotificationsTotal.WithLabelValues(channel, status).Inc()
	s.logger.Info("dispatch",
		zap.String("memorial", memorial.Name),
		zap.String("channel", channel),
		zap.String("status", status),
		zap.String("message", errMsg),
	)
}

// SendTestEmail delivers a fixed test mail with the current settings.
func (s *DispatchService) SendTestEmail(ctx context.Context) error {
	settings, err := s.settings.All(ctx)
	if err != nil {
		return err
	}
	cfg, ok := emailConfig(settings)
	if !ok {
		return errors.New(msgEmailConfigIncomplete)
	}
	return s.email.Send(cfg,
		"MemorialHub 测试邮件",
		"🎉 恭喜！邮件推送配置成功。\n\n这是一封来自 MemorialHub 的测试邮件。")
}

// SendTestTelegram delivers a fixed test message with the current settings.
func (s *DispatchService) SendTestTelegram(ctx context.Context) error {
	settings, err := s.settings.All(ctx)
	if err != nil {
		return err
	}
	cfg, ok := telegramConfig(settings)
	if !ok {
		return errors.New(msgTelegramConfigIncomplete)
	}
	return s.telegram.Send(cfg, "🎉 <b>MemorialHub 测试消息</b>\n\nTelegram 推送配置成功！")
}

func emailConfig(settings map[string]string) (notify.EmailConfig, bool) {
	cfg := notify.EmailConfig{
		Host: settings[model.SettingSMTPHost],
		User: settings[model.SettingSMTPUser],
		Pass: settings[model.SettingSMTPPass],
		To:   settings[model.SettingNotifyEmail],
	}
	port, err := strconv.Atoi(settings[model.SettingSMTPPort])
	if err != nil || port <= 0 {
		return cfg, false
	}
	cfg.Port = port
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" || cfg.To == "" {
		return cfg, false
	}
	return cfg, true
}

func telegramConfig(settings map[string]string) (notify.TelegramConfig, bool) {
	cfg := notify.TelegramConfig{
		BotToken: settings[model.SettingTelegramToken],
		ChatID:   settings[model.SettingTelegramChat],
	}
	if cfg.BotToken == "" || cfg.ChatID == "" {
		return cfg, false
	}
	return cfg, true
}

func buildSubject(m *model.Memorial) string {
	return fmt.Sprintf("📅 纪念日提醒: %s", m.Name)
}

// buildMessage renders the notification body. Lead time 0 phrases as "today
// is the day", anything else as "N days until".
func buildMessage(m *model.Memorial, daysBefore int) string {
	dateStr := ""
	switch {
	case m.DateMode == model.DateModeSolar && m.SolarDate != nil:
		dateStr = *m.SolarDate
	case m.LunarMonth != nil && m.LunarDay != nil:
		dateStr = fmt.Sprintf("农历%d月%d日", *m.LunarMonth, *m.LunarDay)
	}

	personLine := ""
	if m.Person != nil && *m.Person != "" {
		personLine = fmt.Sprintf("\n👤 关联人物：%s", *m.Person)
	}

	if daysBefore == 0 {
		return fmt.Sprintf("🎉 今天是「%s」！\n📅 日期：%s%s", m.Name, dateStr, personLine)
	}
	return fmt.Sprintf("📅 还有 %d 天就是「%s」了！\n📅 日期：%s%s", daysBefore, m.Name, dateStr, personLine)
}

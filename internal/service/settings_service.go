package service

import (
	"context"
	"strconv"

	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/repository"
)

// Profile is the user-facing preference pair.
type Profile struct {
	Nickname string `json:"nickname"`
	Region   string `json:"region"`
}

// NotificationSettings is the read shape of the push configuration. The SMTP
// password is never echoed back, only its presence.
type NotificationSettings struct {
	SMTPHost         *string `json:"smtp_host"`
	SMTPPort         *int    `json:"smtp_port"`
	SMTPUser         *string `json:"smtp_user"`
	HasSMTPPass      bool    `json:"has_smtp_pass"`
	NotifyEmail      *string `json:"notify_email"`
	TelegramBotToken *string `json:"telegram_bot_token"`
	TelegramChatID   *string `json:"telegram_chat_id"`
}

// NotificationSettingsInput is the write shape; nil fields are left untouched.
type NotificationSettingsInput struct {
	SMTPHost         *string `json:"smtp_host"`
	SMTPPort         *int    `json:"smtp_port"`
	SMTPUser         *string `json:"smtp_user"`
	SMTPPass         *string `json:"smtp_pass"`
	NotifyEmail      *string `json:"notify_email"`
	TelegramBotToken *string `json:"telegram_bot_token"`
	TelegramChatID   *string `json:"telegram_chat_id"`
}

// SettingsService exposes the preference and push-credential settings.
type SettingsService struct {
	settings *repository.SettingRepository
}

func NewSettingsService(settings *repository.SettingRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) Profile(ctx context.Context) (Profile, error) {
	nickname, err := s.settings.Get(ctx, model.SettingNickname)
	if err != nil {
		return Profile{}, err
	}
	region, err := s.settings.Get(ctx, model.SettingRegion)
	if err != nil {
		return Profile{}, err
	}
	if nickname == "" {
		nickname = "MemorialHub 用户"
	}
	if region == "" {
		region = "north"
	}
	return Profile{Nickname: nickname, Region: region}, nil
}

func (s *SettingsService) UpdateProfile(ctx context.Context, nickname, region string) error {
	if nickname != "" {
		if err := s.settings.Set(ctx, model.SettingNickname, nickname); err != nil {
			return err
		}
	}
	if region != "" {
		if err := s.settings.Set(ctx, model.SettingRegion, region); err != nil {
			return err
		}
	}
	return nil
}

func (s *SettingsService) NotificationSettings(ctx context.Context) (NotificationSettings, error) {
	all, err := s.settings.All(ctx)
	if err != nil {
		return NotificationSettings{}, err
	}

	out := NotificationSettings{
		SMTPHost:         optional(all, model.SettingSMTPHost),
		SMTPUser:         optional(all, model.SettingSMTPUser),
		HasSMTPPass:      all[model.SettingSMTPPass] != "",
		NotifyEmail:      optional(all, model.SettingNotifyEmail),
		TelegramBotToken: optional(all, model.SettingTelegramToken),
		TelegramChatID:   optional(all, model.SettingTelegramChat),
	}
	if port, err := strconv.Atoi(all[model.SettingSMTPPort]); err == nil {
		out.SMTPPort = &port
	}
	return out, nil
}

// UpdateNotificationSettings persists the provided fields. An empty SMTP
// password does not overwrite a stored one.
func (s *SettingsService) UpdateNotificationSettings(ctx context.Context, input NotificationSettingsInput) error {
	set := func(key string, val *string) error {
		if val == nil {
			return nil
		}
		return s.settings.Set(ctx, key, *val)
	}

	if err := set(model.SettingSMTPHost, input.SMTPHost); err != nil {
		return err
	}
	if input.SMTPPort != nil {
		if err := s.settings.Set(ctx, model.SettingSMTPPort, strconv.Itoa(*input.SMTPPort)); err != nil {
			return err
		}
	}
	if err := set(model.SettingSMTPUser, input.SMTPUser); err != nil {
		return err
	}
	if input.SMTPPass != nil && *input.SMTPPass != "" {
		if err := s.settings.Set(ctx, model.SettingSMTPPass, *input.SMTPPass); err != nil {
			return err
		}
	}
	if err := set(model.SettingNotifyEmail, input.NotifyEmail); err != nil {
		return err
	}
	if err := set(model.SettingTelegramToken, input.TelegramBotToken); err != nil {
		return err
	}
	return set(model.SettingTelegramChat, input.TelegramChatID)
}

func optional(all map[string]string, key string) *string {
	if v, ok := all[key]; ok && v != "" {
		return &v
	}
	return nil
}

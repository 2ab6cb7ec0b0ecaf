package model

import "time"

// Well-known setting keys.
const (
	SettingPasswordHash  = "password_hash"
	SettingSessionToken  = "session_token"
	SettingSiteName      = "site_name"
	SettingNickname      = "nickname"
	SettingRegion        = "region"
	SettingSMTPHost      = "smtp_host"
	SettingSMTPPort      = "smtp_port"
	SettingSMTPUser      = "smtp_user"
	SettingSMTPPass      = "smtp_pass"
	SettingNotifyEmail   = "notify_email"
	SettingTelegramToken = "telegram_bot_token"
	SettingTelegramChat  = "telegram_chat_id"
)

// Setting is a flat key-value pair holding credentials and preferences.
// Intentionally schema-free so new options don't need new tables.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

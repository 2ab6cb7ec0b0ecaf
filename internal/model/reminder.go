package model

import "time"

// Notification channels a reminder can use.
const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
)

// Reminder attaches a (lead time, channel) rule to a memorial.
type Reminder struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MemorialID uint      `gorm:"index" json:"memorial_id"`
	DaysBefore int       `gorm:"not null;default:0" json:"days_before"` // 0 = day-of
	Channel    string    `gorm:"not null" json:"channel"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidChannel reports whether ch is a supported notification channel.
func ValidChannel(ch string) bool {
	return ch == ChannelEmail || ch == ChannelTelegram
}

package model

import "time"

// Dispatch outcomes recorded in the log.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// NotificationLog records one dispatch attempt. Rows are append-only and
// written exclusively by the scheduled dispatch job and the test-send routes.
type NotificationLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MemorialID uint      `gorm:"index" json:"memorial_id"`
	Channel    string    `json:"channel"`
	Status     string    `json:"status"`
	Message    *string   `json:"message"` // failure reason, empty on success
	SentAt     time.Time `json:"sent_at"`
}

// Package notify holds the outbound notification channels. Each sender makes
// a single synchronous delivery attempt; retry policy, if any, belongs to the
// caller.
package notify

// EmailConfig carries the SMTP credentials and the fixed recipient.
type EmailConfig struct {
	Host string
	Port int
	User string
	Pass string
	To   string
}

// TelegramConfig carries the bot token and target chat.
type TelegramConfig struct {
	BotToken string
	ChatID   string // numeric chat id, stored as string in settings
}

// EmailSender delivers one plain-text email.
type EmailSender interface {
	Send(cfg EmailConfig, subject, body string) error
}

// TelegramSender delivers one message to a Telegram chat.
type TelegramSender interface {
	Send(cfg TelegramConfig, text string) error
}

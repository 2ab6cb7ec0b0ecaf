package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

const fromName = "MemorialHub"

// SMTPSender sends mail over SMTP with the credentials from settings.
type SMTPSender struct{}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{}
}

func (s *SMTPSender) Send(cfg EmailConfig, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.User, fromName)
	m.SetHeader("To", cfg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	return nil
}

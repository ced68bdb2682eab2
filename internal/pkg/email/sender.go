package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"store/internal/entities"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Sender отправляет уведомления по SMTP.
type Sender struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSender(cfg *Config) *Sender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &Sender{
		addr: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

func (s *Sender) Send(ctx context.Context, notification entities.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(s.from, notification)

	err := smtp.SendMail(s.addr, s.auth, s.from, []string{notification.Recipient}, msg)
	if err != nil {
		return fmt.Errorf("send mail to %q: %w", notification.Recipient, err)
	}

	return nil
}

func buildMessage(from string, notification entities.Notification) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", notification.Recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", notification.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Dear %s,\r\n\r\n", notification.FullName)
	b.WriteString(notification.Body)
	b.WriteString("\r\n")

	return []byte(b.String())
}

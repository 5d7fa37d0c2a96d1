package utils

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"hotel-reservation-backend/config"
)

// Mailer wraps a gomail SMTP dialer. When SMTP is not configured the
// mailer stays in mock mode and logs outgoing mail instead of sending it,
// so local instances work without a mail account.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailerFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD
// and SMTP_FROM. Missing host or port puts the mailer into mock mode.
func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	portRaw := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")
	from := EnvOrDefault("SMTP_FROM", user)

	if host == "" || portRaw == "" {
		log.Println("SMTP not configured; outgoing mail will be logged only")
		return &Mailer{from: from}
	}

	port, err := strconv.Atoi(portRaw)
	if err != nil {
		config.Logger.Error("Invalid SMTP_PORT value, defaulting to port 25",
			zap.String("provided_port", portRaw),
			zap.Error(err),
		)
		port = 25
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

// Send delivers a plain-text mail, or logs it in mock mode.
func (m *Mailer) Send(to, subject, body string) error {
	if m.dialer == nil {
		log.Printf("[MOCK EMAIL] to:%s subject:%q\n%s", to, subject, body)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		config.Logger.Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}
	return nil
}

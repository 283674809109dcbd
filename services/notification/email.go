package notification

import (
	"fmt"
	"net/smtp"

	"fixel/config"
	"fixel/utils"

	"go.uber.org/zap"
)

// Mailer sends plain-text email over SMTP. When the SMTP settings are
// incomplete it logs the message instead of sending, so development
// environments work without a mail account.
type Mailer struct {
	Host   string
	Port   string
	User   string
	Pass   string
	Sender string
}

// NewMailerFromConfig builds a Mailer from the loaded application config.
func NewMailerFromConfig() *Mailer {
	cfg := config.AppConfig
	return &Mailer{
		Host:   cfg.SMTPHost,
		Port:   cfg.SMTPPort,
		User:   cfg.SMTPUser,
		Pass:   cfg.SMTPPass,
		Sender: cfg.SMTPSender,
	}
}

func (m *Mailer) configured() bool {
	return m.Host != "" && m.Port != "" && m.User != "" && m.Pass != ""
}

// Send delivers a single message. Best-effort like every notifier path.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.configured() {
		utils.GetLogger().Info("mock email",
			zap.String("to", to), zap.String("subject", subject), zap.String("body", body))
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.Sender, to, subject, body))
	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)

	if err := smtp.SendMail(addr, auth, m.Sender, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

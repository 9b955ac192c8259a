package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"hostal/config"
	"hostal/infras/otel"
	"hostal/shared/constant"
)

// Mailer sends transactional mail: verification links, check-in invitations.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
}

type logMailer struct{}

// Send on the disabled mailer only logs, so local environments never need an
// SMTP relay.
func (logMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("mailer disabled, skipping send")

	return nil
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	if !cfg.SMTP.Enable {
		return logMailer{}
	}

	return &smtpMailer{
		config: cfg,
		otel:   otl,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("mail.to", to)
	scope.SetAttribute("mail.subject", subject)

	addr := net.JoinHostPort(m.config.SMTP.Host, m.config.SMTP.Port)
	auth := smtp.PlainAuth("", m.config.SMTP.Username, m.config.SMTP.Password, m.config.SMTP.Host)

	var msg strings.Builder
	msg.WriteString("From: " + m.config.SMTP.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err = smtp.SendMail(addr, auth, m.config.SMTP.From, []string{to}, []byte(msg.String())); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")

	return nil
}

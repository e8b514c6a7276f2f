package mail

import (
	"errors"
	"fmt"
	"net/textproto"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/alertdash/alertdash/internal/config"
	"github.com/alertdash/alertdash/internal/logger"
)

// SMTPSender implements Sender over an authenticated SMTP submission
// session. Port 465 uses implicit TLS (the gomail dialer switches to SSL
// on that port). Each Send dials a fresh session and closes it; there is
// no connection reuse and no retry.
type SMTPSender struct {
	dialer        *gomail.Dialer
	senderAddress string
	senderName    string
	log           *logger.Logger
}

// NewSMTPSender creates an SMTPSender from the mail configuration.
func NewSMTPSender(cfg config.MailConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{
		dialer:        gomail.NewDialer(cfg.Host, cfg.Port, cfg.SenderAddress, cfg.SenderPassword),
		senderAddress: cfg.SenderAddress,
		senderName:    cfg.SenderName,
		log:           log.WithComponent("mail"),
	}
}

// Send delivers a single plain-text message. Every recipient appears in
// the To header, so all recipients can see each other's address.
func (s *SMTPSender) Send(to []string, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.senderAddress, s.senderName)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		if isAuthError(err) {
			s.log.Error().Err(err).Str("host", s.dialer.Host).Msg("smtp authentication rejected")
			return fmt.Errorf("%w: %v", ErrAuthentication, err)
		}
		s.log.Error().Err(err).Str("host", s.dialer.Host).Int("recipients", len(to)).Msg("smtp send failed")
		return fmt.Errorf("smtp send failed: %w", err)
	}

	s.log.Info().Int("recipients", len(to)).Msg("mail sent")
	return nil
}

// Host returns the configured SMTP host.
func (s *SMTPSender) Host() string {
	return s.dialer.Host
}

// isAuthError recognizes SMTP authentication rejections. The server
// reports them as 530/534/535 replies; Gmail's 535 also carries the
// "Username and Password not accepted" text.
func isAuthError(err error) bool {
	var proto *textproto.Error
	if errors.As(err, &proto) {
		switch proto.Code {
		case 530, 534, 535:
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "username and password not accepted") ||
		strings.Contains(msg, "authentication failed")
}

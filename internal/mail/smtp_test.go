package mail

import (
	"errors"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alertdash/alertdash/internal/config"
	"github.com/alertdash/alertdash/internal/logger"
)

func TestNewSMTPSender(t *testing.T) {
	cfg := config.MailConfig{
		Host:           "smtp.gmail.com",
		Port:           465,
		SenderAddress:  "ops@example.com",
		SenderPassword: "app-password",
		SenderName:     "Alertdash",
	}

	s := NewSMTPSender(cfg, logger.New("disabled", "json"))
	assert.Equal(t, "smtp.gmail.com", s.Host())
	// Port 465 makes the gomail dialer use implicit TLS
	assert.True(t, s.dialer.SSL)
	assert.Equal(t, 465, s.dialer.Port)
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"535 reply", &textproto.Error{Code: 535, Msg: "5.7.8 Username and Password not accepted"}, true},
		{"530 reply", &textproto.Error{Code: 530, Msg: "5.7.0 Authentication Required"}, true},
		{"534 reply", &textproto.Error{Code: 534, Msg: "5.7.9 Application-specific password required"}, true},
		{"gmail text without reply code", errors.New("535 5.7.8 Username and Password not accepted"), true},
		{"generic auth text", errors.New("smtp: authentication failed"), true},
		{"mailbox unavailable", &textproto.Error{Code: 550, Msg: "5.1.1 mailbox unavailable"}, false},
		{"connection refused", errors.New("dial tcp: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAuthError(tt.err))
		})
	}
}

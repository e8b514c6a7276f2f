package dispatch

import (
	"context"
	"errors"
	"strings"

	"github.com/alertdash/alertdash/internal/logger"
	"github.com/alertdash/alertdash/internal/mail"
	"github.com/alertdash/alertdash/internal/recipients"
)

// Dispatch errors
var (
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrMessageTooLong = errors.New("message is too long")
	ErrNoRecipients   = errors.New("no recipients configured")
)

const (
	// MaxMessageLen is the maximum alert message length in characters.
	MaxMessageLen = 5000

	subjectPrefix     = "System Alert: "
	subjectPreviewLen = 50

	bodyHeader = "System Alert Notification:\n\n"
)

// Dispatcher composes and sends one alert email to every recipient on
// record. It consults the recipient store at call time only; a dispatch
// is a single synchronous attempt over a fresh SMTP session with no
// partial-delivery concept.
type Dispatcher struct {
	store  *recipients.Store
	sender mail.Sender
	log    *logger.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(store *recipients.Store, sender mail.Sender, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		store:  store,
		sender: sender,
		log:    log.WithComponent("dispatch"),
	}
}

// Send validates message, addresses it to every current recipient, and
// sends it. All validation happens before any network activity. On
// success it returns the number of recipients the message was sent to.
func (d *Dispatcher) Send(ctx context.Context, message string) (int, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return 0, ErrEmptyMessage
	}
	if len([]rune(message)) > MaxMessageLen {
		return 0, ErrMessageTooLong
	}

	to := d.store.Load()
	if len(to) == 0 {
		return 0, ErrNoRecipients
	}

	if err := d.sender.Send(to, Subject(message), Body(message)); err != nil {
		return 0, err
	}

	d.log.Info().Int("recipients", len(to)).Msg("alert dispatched")
	return len(to), nil
}

// Subject builds the alert subject: a fixed prefix plus the first 50
// characters of the message, with an ellipsis marker when truncated.
func Subject(message string) string {
	runes := []rune(message)
	if len(runes) > subjectPreviewLen {
		return subjectPrefix + string(runes[:subjectPreviewLen]) + "..."
	}
	return subjectPrefix + message
}

// Body wraps the full, untruncated message in the alert template.
func Body(message string) string {
	return bodyHeader + message
}

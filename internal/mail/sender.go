package mail

import "errors"

// ErrAuthentication marks an SMTP authentication failure, kept distinct
// from other transport failures so callers can tell the operator to check
// the configured credentials.
var ErrAuthentication = errors.New("smtp authentication failed")

// Sender is the interface the mail transport must implement. This
// abstraction keeps the dispatch logic independent of the SMTP library
// and lets tests substitute a recording fake.
type Sender interface {
	// Send delivers one plain-text message addressed to every entry of to.
	// Delivery is all-or-nothing: the transport either accepts the whole
	// addressee list or the call fails as a unit.
	Send(to []string, subject, body string) error
}

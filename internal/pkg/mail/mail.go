package mail

import (
	"context"
	"io"
)

// Message is an email payload. All fields are provider-agnostic.
type Message struct {
	// From is an optional explicit sender; implementations fall back to
	// their configured default when empty.
	From string
	// To lists the required recipients.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// Subject is the email subject line.
	Subject string
	// TextBody is the plain-text body, used when HTMLBody is empty.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
}

// Mail abstracts an email provider.
type Mail interface {
	io.Closer
	// Send dispatches the message using the underlying provider.
	Send(ctx context.Context, msg Message) error
}

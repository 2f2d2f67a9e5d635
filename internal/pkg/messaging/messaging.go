package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrUnsupported is returned when a driver does not support a requested feature.
var ErrUnsupported = errors.New("pkgmessage: unsupported feature")

// Header is a single message header.
type Header struct {
	Key   string
	Value []byte
}

// OutgoingMessage is a message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte

	// Headers are optional message headers. Drivers without header
	// support silently drop them.
	Headers []Header

	// Delay postpones delivery on drivers that support deferred
	// publishing.
	Delay time.Duration
}

// PublishResult reports where and when a message was published.
type PublishResult struct {
	Topic     string
	Timestamp time.Time
}

// Publisher sends messages to a topic or subject on a broker.
type Publisher interface {
	io.Closer

	// Publish sends msg to destination.
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

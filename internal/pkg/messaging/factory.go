package messaging

import (
	"fmt"
)

// Driver identifies a messaging backend.
type Driver string

const (
	// DriverNATS selects the NATS implementation.
	DriverNATS Driver = "nats"
	// DriverNSQ selects the NSQ implementation.
	DriverNSQ Driver = "nsq"
)

// FactoryConfig holds per-driver configuration for New.
type FactoryConfig struct {
	Driver Driver

	NATS NATSConfig
	NSQ  NSQConfig
}

// New constructs a Publisher for the configured driver.
func New(cfg FactoryConfig) (Publisher, error) {
	switch cfg.Driver {
	case DriverNATS:
		return NewNATS(cfg.NATS)
	case DriverNSQ:
		return NewNSQ(cfg.NSQ)
	default:
		return nil, fmt.Errorf("pkgmessage: unknown driver %q", cfg.Driver)
	}
}

package messaging

import (
	"errors"
	"testing"
)

func TestNewUnknownDriver(t *testing.T) {
	if _, err := New(FactoryConfig{Driver: "kafka"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNewNATSRequiresURL(t *testing.T) {
	_, err := New(FactoryConfig{Driver: DriverNATS})
	if !errors.Is(err, ErrNATSURLRequired) {
		t.Fatalf("expected ErrNATSURLRequired, got %v", err)
	}
}

func TestNewNSQRequiresProducerAddr(t *testing.T) {
	_, err := New(FactoryConfig{Driver: DriverNSQ})
	if !errors.Is(err, ErrNSQProducerAddrRequired) {
		t.Fatalf("expected ErrNSQProducerAddrRequired, got %v", err)
	}
}

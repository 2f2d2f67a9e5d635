package clock

import "time"

// Clocker abstracts reading the current time so it can be faked in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production implementation backed by the system clock.
type TimeClocker struct{}

// New returns a TimeClocker.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

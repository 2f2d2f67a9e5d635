// Package messaging provides a broker-agnostic publisher with NATS and
// NSQ drivers, used to emit audit events.
package messaging

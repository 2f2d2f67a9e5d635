// Package mail defines the contracts for sending email.
//
// Callers build a provider-agnostic Message and hand it to the Mail
// interface; the concrete delivery mechanism (SMTP here, an API provider
// elsewhere) is an implementation detail of this package. One-time code
// delivery goes through this interface.
package mail

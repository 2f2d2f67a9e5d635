// Package otp generates one-time numeric codes for email verification.
package otp

// Package validator provides struct validation behind a small interface.
//
// Inbound requests and wiring structs declare their rules with struct tags;
// use cases depend on the Validator interface so the concrete engine
// (go-playground/validator v10) stays an implementation detail.
package validator

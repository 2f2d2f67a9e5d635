package validator

// Validator validates structs using tag-based rules.
type Validator interface {
	// Validate returns an error describing every failed rule, or nil.
	Validate(data any) error
}

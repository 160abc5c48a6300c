package validator

// Validator validates a struct against its declared rules.
type Validator interface {
	// Validate returns nil when data passes, or an error describing the
	// failed fields.
	Validate(data any) error
}

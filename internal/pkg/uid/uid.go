// Package uid provides identifier generators used across the service.
package uid

// NumberID generates 64-bit numeric identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// NumberFormatter defines the interface for locale-aware decimal formatting.
type NumberFormatter interface {
	// FormatDecimal renders value with exactly fractionDigits digits after the
	// decimal point and locale thousands separators.
	FormatDecimal(value float64, fractionDigits int) string

	// Locale returns the BCP 47 tag the formatter prints with.
	Locale() string
}

// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/khatiyan/backend/internal/application/adapter"
)

// defaultNumberLocale is used when no locale tag is configured.
const defaultNumberLocale = "en-US"

// numberFormatter implements the adapter.NumberFormatter interface.
type numberFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewNumberFormatter creates a formatter for the BCP 47 locale tag.
// An empty tag selects en-US.
func NewNumberFormatter(locale string) (adapter.NumberFormatter, error) {
	if locale == "" {
		locale = defaultNumberLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid number locale %q: %w", locale, err)
	}

	return &numberFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}, nil
}

// FormatDecimal renders value with a fixed number of fraction digits.
func (f *numberFormatter) FormatDecimal(value float64, fractionDigits int) string {
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	return f.printer.Sprint(number.Decimal(value, number.Scale(fractionDigits)))
}

// Locale returns the formatter's locale tag.
func (f *numberFormatter) Locale() string {
	return f.tag.String()
}

// Package valueobject contains domain value objects for the Khatiyan calculator.
package valueobject

import "fmt"

// Locale selects the language of tier names and user-facing messages.
type Locale string

const (
	LocaleBengali Locale = "bn"
	LocaleEnglish Locale = "en"
)

// IsValid reports whether the locale is supported.
func (l Locale) IsValid() bool {
	return l == LocaleBengali || l == LocaleEnglish
}

// ParseLocale returns the locale for s, falling back to Bengali.
func ParseLocale(s string) Locale {
	l := Locale(s)
	if l.IsValid() {
		return l
	}
	return LocaleBengali
}

// TierLabels holds display names used when formatting LandUnits.
type TierLabels struct {
	Ana       string
	Ganda     string
	Kara      string
	Kranti    string
	Til       string
	Zero      string
	Delimiter string
	// OwnerName is a fmt pattern for default owner names, e.g. "Owner %d".
	OwnerName string
}

// BengaliLabels are the labels printed on khatiyan documents.
var BengaliLabels = TierLabels{
	Ana:       "আনা",
	Ganda:     "গন্ডা",
	Kara:      "করা",
	Kranti:    "ক্রান্তি",
	Til:       "তিল",
	Zero:      "০",
	Delimiter: ", ",
	OwnerName: "মালিক %d",
}

// EnglishLabels are transliterated labels.
var EnglishLabels = TierLabels{
	Ana:       "ana",
	Ganda:     "ganda",
	Kara:      "kara",
	Kranti:    "kranti",
	Til:       "til",
	Zero:      "0",
	Delimiter: ", ",
	OwnerName: "Owner %d",
}

// Labels returns the tier labels for the locale.
func (l Locale) Labels() TierLabels {
	if l == LocaleEnglish {
		return EnglishLabels
	}
	return BengaliLabels
}

// DefaultOwnerName returns the default display name of the n-th owner (1-based).
func (t TierLabels) DefaultOwnerName(n int) string {
	return fmt.Sprintf(t.OwnerName, n)
}

// HazariMode selects which Hazari normalization is displayed.
type HazariMode string

const (
	// HazariModeTotal normalizes against the declared khatiyan area.
	HazariModeTotal HazariMode = "total"
	// HazariModeRemaining normalizes against the land that still remains.
	HazariModeRemaining HazariMode = "remaining"
)

// IsValid reports whether the mode is supported.
func (m HazariMode) IsValid() bool {
	return m == HazariModeTotal || m == HazariModeRemaining
}

// ShareWarning is raised when the owners' shares exceed one full share.
// It never blocks a calculation.
type ShareWarning struct {
	Threshold int64
	Observed  int64
}

// Excess returns how many til the shares exceed the threshold by.
func (w ShareWarning) Excess() int64 {
	return w.Observed - w.Threshold
}

// Message renders the warning for the locale.
func (w ShareWarning) Message(l Locale) string {
	if l == LocaleEnglish {
		return fmt.Sprintf("Warning: the sum of shares (%d til) exceeds 16 ana (%d til).", w.Observed, w.Threshold)
	}
	return fmt.Sprintf("সতর্কতা: শেয়ারের যোগফল ১৬ আনার (%d তিল) চেয়ে বেশি (%d তিল) হয়েছে।", w.Threshold, w.Observed)
}

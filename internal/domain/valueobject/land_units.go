// Package valueobject contains domain value objects for the Khatiyan calculator.
package valueobject

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Tier ratios of the khatiyan unit system.
const (
	AnaPerFullShare = 16
	GandaPerAna     = 20
	KaraPerGanda    = 4
	KrantiPerKara   = 3
	TilPerKranti    = 20
)

// Derived til counts.
const (
	TilPerKara      = TilPerKranti * KrantiPerKara
	TilPerGanda     = TilPerKara * KaraPerGanda
	TilPerAna       = TilPerGanda * GandaPerAna // 4800
	TilPerFullShare = TilPerAna * AnaPerFullShare // 76800
)

// ConversionScale describes the fixed tier ratios of one full share.
type ConversionScale struct {
	AnaPerFullShare int64
	GandaPerAna     int64
	KaraPerGanda    int64
	KrantiPerKara   int64
	TilPerKranti    int64
	TilPerAna       int64
	TilPerFullShare int64
}

// Scale returns the khatiyan conversion scale.
func Scale() ConversionScale {
	return ConversionScale{
		AnaPerFullShare: AnaPerFullShare,
		GandaPerAna:     GandaPerAna,
		KaraPerGanda:    KaraPerGanda,
		KrantiPerKara:   KrantiPerKara,
		TilPerKranti:    TilPerKranti,
		TilPerAna:       TilPerAna,
		TilPerFullShare: TilPerFullShare,
	}
}

// LandUnits is an ownership share expressed in ana/ganda/kara/kranti/til.
// Fields are not bounded to their tier range: 25 ana is simply 25 times the
// ana weight.
type LandUnits struct {
	Ana    int64
	Ganda  int64
	Kara   int64
	Kranti int64
	Til    int64
}

// FullShare returns 16 ana.
func FullShare() LandUnits {
	return LandUnits{Ana: AnaPerFullShare}
}

// MaxTierCount bounds each tier field accepted from callers. A share at the
// bound still fits in a til count with room for many owners.
const MaxTierCount = 1_000_000_000_000

// ErrTilOverflow is returned when a share does not fit in an int64 til count.
var ErrTilOverflow = errors.New("share is too large to count in til")

// ToTil returns the total count of til. Negative fields propagate
// arithmetically and overflow is not checked; callers validate before
// converting or use CheckedTil.
func (u LandUnits) ToTil() int64 {
	total := u.Ana
	total = total*GandaPerAna + u.Ganda
	total = total*KaraPerGanda + u.Kara
	total = total*KrantiPerKara + u.Kranti
	total = total*TilPerKranti + u.Til
	return total
}

// CheckedTil is ToTil with overflow detection. It expects non-negative
// fields, as enforced by Validate.
func (u LandUnits) CheckedTil() (int64, error) {
	steps := []struct {
		factor int64
		add    int64
	}{
		{GandaPerAna, u.Ganda},
		{KaraPerGanda, u.Kara},
		{KrantiPerKara, u.Kranti},
		{TilPerKranti, u.Til},
	}

	total := u.Ana
	for _, s := range steps {
		if total > (math.MaxInt64-s.add)/s.factor {
			return 0, ErrTilOverflow
		}
		total = total*s.factor + s.add
	}
	return total, nil
}

// FromTil decomposes a til count into canonical tiers. Negative totals
// decompose to the zero quantity.
func FromTil(total int64) LandUnits {
	if total <= 0 {
		return LandUnits{}
	}

	remaining := total

	til := remaining % TilPerKranti
	remaining /= TilPerKranti

	kranti := remaining % KrantiPerKara
	remaining /= KrantiPerKara

	kara := remaining % KaraPerGanda
	remaining /= KaraPerGanda

	ganda := remaining % GandaPerAna
	remaining /= GandaPerAna

	return LandUnits{
		Ana:    remaining,
		Ganda:  ganda,
		Kara:   kara,
		Kranti: kranti,
		Til:    til,
	}
}

// FromTilFloat rounds total to the nearest til before decomposing it.
// The rounding is lossy by construction.
func FromTilFloat(total float64) LandUnits {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return LandUnits{}
	}
	return FromTil(int64(math.Round(total)))
}

// Normalize carries out-of-range fields into higher tiers.
func (u LandUnits) Normalize() LandUnits {
	return FromTil(u.ToTil())
}

// IsZero reports whether every tier is zero.
func (u LandUnits) IsZero() bool {
	return u == LandUnits{}
}

// IsCanonical reports whether every field lies inside its tier range.
func (u LandUnits) IsCanonical() bool {
	return u.Ana >= 0 &&
		u.Ganda >= 0 && u.Ganda < GandaPerAna &&
		u.Kara >= 0 && u.Kara < KaraPerGanda &&
		u.Kranti >= 0 && u.Kranti < KrantiPerKara &&
		u.Til >= 0 && u.Til < TilPerKranti
}

// Validate rejects negative tier counts.
func (u LandUnits) Validate() error {
	fields := []struct {
		name  string
		value int64
	}{
		{"ana", u.Ana},
		{"ganda", u.Ganda},
		{"kara", u.Kara},
		{"kranti", u.Kranti},
		{"til", u.Til},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", f.name, f.value)
		}
	}
	return nil
}

// FractionOfFullShare returns the share as a fraction of 16 ana.
func (u LandUnits) FractionOfFullShare() float64 {
	return float64(u.ToTil()) / TilPerFullShare
}

// Format renders the non-zero tiers in descending order using labels.
func (u LandUnits) Format(labels TierLabels) string {
	tiers := []struct {
		value int64
		name  string
	}{
		{u.Ana, labels.Ana},
		{u.Ganda, labels.Ganda},
		{u.Kara, labels.Kara},
		{u.Kranti, labels.Kranti},
		{u.Til, labels.Til},
	}

	parts := make([]string, 0, len(tiers))
	for _, t := range tiers {
		if t.value > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", t.value, t.name))
		}
	}

	if len(parts) == 0 {
		return labels.Zero
	}
	return strings.Join(parts, labels.Delimiter)
}

// String formats the quantity with Bengali tier names.
func (u LandUnits) String() string {
	return u.Format(BengaliLabels)
}

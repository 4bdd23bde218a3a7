package valueobject

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLandUnits_ToTil(t *testing.T) {
	tests := []struct {
		name     string
		units    LandUnits
		expected int64
	}{
		{name: "zero", units: LandUnits{}, expected: 0},
		{name: "one ana", units: LandUnits{Ana: 1}, expected: 4800},
		{name: "full share", units: LandUnits{Ana: 16}, expected: 76800},
		{name: "one ganda", units: LandUnits{Ganda: 1}, expected: 240},
		{name: "one kara", units: LandUnits{Kara: 1}, expected: 60},
		{name: "one kranti", units: LandUnits{Kranti: 1}, expected: 20},
		{name: "one til", units: LandUnits{Til: 1}, expected: 1},
		{name: "mixed", units: LandUnits{Ana: 2, Ganda: 5, Kara: 1, Kranti: 2, Til: 7}, expected: 2*4800 + 5*240 + 60 + 40 + 7},
		{name: "out of range fields accepted", units: LandUnits{Ana: 25, Ganda: 20}, expected: 25*4800 + 4800},
		{name: "negative propagates", units: LandUnits{Ana: 1, Til: -1}, expected: 4799},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.units.ToTil(); got != tt.expected {
				t.Errorf("ToTil() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestFromTil(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		expected LandUnits
	}{
		{name: "full share", total: 76800, expected: LandUnits{Ana: 16}},
		{name: "half share", total: 38400, expected: LandUnits{Ana: 8}},
		{name: "zero", total: 0, expected: LandUnits{}},
		{name: "negative", total: -25, expected: LandUnits{}},
		{name: "every tier", total: 4800 + 240 + 60 + 20 + 1, expected: LandUnits{Ana: 1, Ganda: 1, Kara: 1, Kranti: 1, Til: 1}},
		{name: "more than a full share", total: 76800 * 2, expected: LandUnits{Ana: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTil(tt.total); got != tt.expected {
				t.Errorf("FromTil(%d) = %+v, expected %+v", tt.total, got, tt.expected)
			}
		})
	}
}

func TestFromTil_RoundTripCanonical(t *testing.T) {
	for ana := int64(0); ana <= 17; ana += 3 {
		for ganda := int64(0); ganda < GandaPerAna; ganda += 3 {
			for kara := int64(0); kara < KaraPerGanda; kara++ {
				for kranti := int64(0); kranti < KrantiPerKara; kranti++ {
					for til := int64(0); til < TilPerKranti; til += 7 {
						u := LandUnits{Ana: ana, Ganda: ganda, Kara: kara, Kranti: kranti, Til: til}
						if !u.IsCanonical() {
							t.Fatalf("expected %+v to be canonical", u)
						}
						if got := FromTil(u.ToTil()); got != u {
							t.Fatalf("round trip of %+v produced %+v", u, got)
						}
					}
				}
			}
		}
	}
}

func TestFromTil_RoundTripNonCanonicalPreservesTotal(t *testing.T) {
	u := LandUnits{Ana: 1, Ganda: 25, Kara: 9, Kranti: 4, Til: 45}
	if u.IsCanonical() {
		t.Fatal("expected non-canonical quantity")
	}

	got := FromTil(u.ToTil())
	if got == u {
		t.Error("expected field breakdown to change for non-canonical input")
	}
	if got.ToTil() != u.ToTil() {
		t.Errorf("expected total %d to survive the round trip, got %d", u.ToTil(), got.ToTil())
	}
	if !got.IsCanonical() {
		t.Errorf("expected decomposed quantity to be canonical, got %+v", got)
	}
	if n := u.Normalize(); n != got {
		t.Errorf("Normalize() = %+v, expected %+v", n, got)
	}
}

func TestFromTilFloat(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		expected LandUnits
	}{
		{name: "rounds down", total: 4800.4, expected: LandUnits{Ana: 1}},
		{name: "rounds up", total: 4799.5, expected: LandUnits{Ana: 1}},
		{name: "exact", total: 76800, expected: LandUnits{Ana: 16}},
		{name: "tiny negative rounds to zero", total: -0.2, expected: LandUnits{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTilFloat(tt.total); got != tt.expected {
				t.Errorf("FromTilFloat(%v) = %+v, expected %+v", tt.total, got, tt.expected)
			}
		})
	}
}

func TestLandUnits_Format(t *testing.T) {
	tests := []struct {
		name     string
		units    LandUnits
		labels   TierLabels
		expected string
	}{
		{name: "zero bengali", units: LandUnits{}, labels: BengaliLabels, expected: "০"},
		{name: "zero english", units: LandUnits{}, labels: EnglishLabels, expected: "0"},
		{name: "two tiers", units: LandUnits{Ana: 2, Ganda: 5}, labels: EnglishLabels, expected: "2 ana, 5 ganda"},
		{name: "skips zero middle tiers", units: LandUnits{Ana: 3, Til: 4}, labels: EnglishLabels, expected: "3 ana, 4 til"},
		{name: "all tiers", units: LandUnits{Ana: 1, Ganda: 2, Kara: 3, Kranti: 1, Til: 9}, labels: EnglishLabels, expected: "1 ana, 2 ganda, 3 kara, 1 kranti, 9 til"},
		{name: "bengali names", units: LandUnits{Ana: 2, Ganda: 5}, labels: BengaliLabels, expected: "2 আনা, 5 গন্ডা"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.units.Format(tt.labels); got != tt.expected {
				t.Errorf("Format() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestLandUnits_String(t *testing.T) {
	got := LandUnits{Ana: 4, Kara: 2}.String()
	if !strings.Contains(got, "আনা") || !strings.Contains(got, "করা") {
		t.Errorf("expected Bengali tier names in %q", got)
	}
	if strings.Contains(got, "গন্ডা") {
		t.Errorf("expected zero ganda to be omitted from %q", got)
	}
}

func TestLandUnits_Validate(t *testing.T) {
	if err := (LandUnits{Ana: 3, Ganda: 30}).Validate(); err != nil {
		t.Errorf("expected out-of-range but non-negative units to be valid, got %v", err)
	}

	err := LandUnits{Ana: 1, Kranti: -2}.Validate()
	if err == nil {
		t.Fatal("expected error for negative kranti")
	}
	if !strings.Contains(err.Error(), "kranti") {
		t.Errorf("expected error to name the field, got %q", err.Error())
	}
}

func TestLandUnits_CheckedTil(t *testing.T) {
	tests := []struct {
		name        string
		units       LandUnits
		expectedTil int64
		expectedErr error
	}{
		{name: "full share", units: FullShare(), expectedTil: 76800},
		{name: "every tier", units: LandUnits{Ana: 1, Ganda: 1, Kara: 1, Kranti: 1, Til: 1}, expectedTil: 5121},
		{name: "tier bound", units: LandUnits{Ana: MaxTierCount, Til: MaxTierCount}, expectedTil: MaxTierCount*4800 + MaxTierCount},
		{name: "ana overflows", units: LandUnits{Ana: 2_000_000_000_000_000}, expectedErr: ErrTilOverflow},
		{name: "til addition overflows", units: LandUnits{Ana: math.MaxInt64 / 4800, Til: math.MaxInt64 / 2}, expectedErr: ErrTilOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.units.CheckedTil()
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if err == nil && got != tt.expectedTil {
				t.Errorf("expected %d til, got %d", tt.expectedTil, got)
			}
			if err == nil && got != tt.units.ToTil() {
				t.Errorf("expected CheckedTil to agree with ToTil, got %d and %d", got, tt.units.ToTil())
			}
		})
	}
}

func TestScale(t *testing.T) {
	s := Scale()
	if s.TilPerFullShare != 76800 {
		t.Errorf("expected 76800 til per full share, got %d", s.TilPerFullShare)
	}
	if s.TilPerAna != 4800 {
		t.Errorf("expected 4800 til per ana, got %d", s.TilPerAna)
	}
	product := s.AnaPerFullShare * s.GandaPerAna * s.KaraPerGanda * s.KrantiPerKara * s.TilPerKranti
	if product != s.TilPerFullShare {
		t.Errorf("tier ratios multiply to %d, expected %d", product, s.TilPerFullShare)
	}
	if FullShare().ToTil() != TilPerFullShare {
		t.Error("expected FullShare to convert to the full til count")
	}
}

func TestLandUnits_FractionOfFullShare(t *testing.T) {
	if got := (LandUnits{Ana: 4}).FractionOfFullShare(); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
}

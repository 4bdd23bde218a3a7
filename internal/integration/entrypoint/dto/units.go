package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khatiyan/backend/internal/application/usecase/conversion"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// LandUnitsRequest represents a share split into its five tiers.
// Each tier is capped at valueobject.MaxTierCount.
type LandUnitsRequest struct {
	Ana    int64 `json:"ana" binding:"gte=0,lte=1000000000000"`
	Ganda  int64 `json:"ganda" binding:"gte=0,lte=1000000000000"`
	Kara   int64 `json:"kara" binding:"gte=0,lte=1000000000000"`
	Kranti int64 `json:"kranti" binding:"gte=0,lte=1000000000000"`
	Til    int64 `json:"til" binding:"gte=0,lte=1000000000000"`
}

// ToLandUnits converts the request into the domain value.
func (r LandUnitsRequest) ToLandUnits() valueobject.LandUnits {
	return valueobject.LandUnits{
		Ana:    r.Ana,
		Ganda:  r.Ganda,
		Kara:   r.Kara,
		Kranti: r.Kranti,
		Til:    r.Til,
	}
}

// LandUnitsResponse represents a share in API responses.
type LandUnitsResponse struct {
	Ana    int64 `json:"ana"`
	Ganda  int64 `json:"ganda"`
	Kara   int64 `json:"kara"`
	Kranti int64 `json:"kranti"`
	Til    int64 `json:"til"`
}

// ToLandUnitsResponse converts a domain LandUnits value to its DTO.
func ToLandUnitsResponse(u valueobject.LandUnits) LandUnitsResponse {
	return LandUnitsResponse{
		Ana:    u.Ana,
		Ganda:  u.Ganda,
		Kara:   u.Kara,
		Kranti: u.Kranti,
		Til:    u.Til,
	}
}

// ToTilRequest represents the request body for POST /units/to-til.
type ToTilRequest struct {
	LandUnitsRequest
	Locale string `json:"locale,omitempty" binding:"omitempty,oneof=bn en"`
}

// ToTilResponse represents the response of a til conversion.
type ToTilResponse struct {
	Til                 int64             `json:"til"`
	Normalized          LandUnitsResponse `json:"normalized"`
	Formatted           string            `json:"formatted"`
	FractionOfFullShare float64           `json:"fraction_of_full_share"`
	Canonical           bool              `json:"canonical"`
}

// ToToTilResponse converts the use case output to a ToTilResponse DTO.
func ToToTilResponse(output *conversion.ConvertToTilOutput) ToTilResponse {
	return ToTilResponse{
		Til:                 output.Til,
		Normalized:          ToLandUnitsResponse(output.Normalized),
		Formatted:           output.Formatted,
		FractionOfFullShare: output.FractionOfFullShare,
		Canonical:           output.Canonical,
	}
}

// FromTilRequest represents the request body for POST /units/from-til.
// Til accepts a JSON number or string and must be a whole number.
type FromTilRequest struct {
	Til    decimal.Decimal `json:"til"`
	Locale string          `json:"locale,omitempty" binding:"omitempty,oneof=bn en"`
}

// FromTilResponse represents the response of a til decomposition.
type FromTilResponse struct {
	Til       int64             `json:"til"`
	Units     LandUnitsResponse `json:"units"`
	Formatted string            `json:"formatted"`
}

// ToFromTilResponse converts the use case output to a FromTilResponse DTO.
func ToFromTilResponse(til int64, output *conversion.ConvertFromTilOutput) FromTilResponse {
	return FromTilResponse{
		Til:       til,
		Units:     ToLandUnitsResponse(output.Units),
		Formatted: output.Formatted,
	}
}

// ScaleResponse lists the tier conversion factors.
type ScaleResponse struct {
	AnaPerFullShare int64 `json:"ana_per_full_share"`
	GandaPerAna     int64 `json:"ganda_per_ana"`
	KaraPerGanda    int64 `json:"kara_per_ganda"`
	KrantiPerKara   int64 `json:"kranti_per_kara"`
	TilPerKranti    int64 `json:"til_per_kranti"`
	TilPerAna       int64 `json:"til_per_ana"`
	TilPerFullShare int64 `json:"til_per_full_share"`
}

// ToScaleResponse converts the domain conversion scale to its DTO.
func ToScaleResponse(s valueobject.ConversionScale) ScaleResponse {
	return ScaleResponse{
		AnaPerFullShare: s.AnaPerFullShare,
		GandaPerAna:     s.GandaPerAna,
		KaraPerGanda:    s.KaraPerGanda,
		KrantiPerKara:   s.KrantiPerKara,
		TilPerKranti:    s.TilPerKranti,
		TilPerAna:       s.TilPerAna,
		TilPerFullShare: s.TilPerFullShare,
	}
}

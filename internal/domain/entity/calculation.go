// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"

	"github.com/google/uuid"

	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// hazariBase is the per-mille denominator of a Hazari share.
const hazariBase = 1000

// CalculationResult is the outcome of a calculation for one owner.
type CalculationResult struct {
	OwnerID       uuid.UUID
	OwnerName     string
	OriginalTil   int64
	OriginalLand  float64
	SoldAmount    float64
	RemainingLand float64
	// HazariShare is normalized against the declared khatiyan area.
	HazariShare float64
	// RelativeHazariShare is normalized against everyone's remaining land.
	RelativeHazariShare     float64
	RemainingShare          valueobject.LandUnits
	FormattedShare          string
	FormattedRemainingShare string
}

// Hazari returns the Hazari value for the display mode.
func (r CalculationResult) Hazari(mode valueobject.HazariMode) float64 {
	if mode == valueobject.HazariModeRemaining {
		return r.RelativeHazariShare
	}
	return r.HazariShare
}

// ValidateInputs checks the blocking preconditions of ApportionShares.
func ValidateInputs(totalArea float64, owners []Owner) error {
	if math.IsNaN(totalArea) || math.IsInf(totalArea, 0) || totalArea <= 0 {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeInvalidTotalArea,
			"total land area must be greater than zero",
			domainerror.ErrInvalidTotalArea,
		)
	}

	if len(owners) == 0 {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeNoOwners,
			"at least one owner is required",
			domainerror.ErrNoOwners,
		)
	}

	var sumTil int64
	var sumSold float64
	for _, o := range owners {
		if err := o.Share.Validate(); err != nil {
			return domainerror.NewCalculationError(
				domainerror.ErrCodeNegativeShare,
				"invalid share for owner "+o.Name+": "+err.Error(),
				domainerror.ErrNegativeShare,
			)
		}

		til, err := o.Share.CheckedTil()
		if err != nil || sumTil > math.MaxInt64-til {
			return domainerror.NewCalculationError(
				domainerror.ErrCodeShareTooLarge,
				"share of owner "+o.Name+" is too large",
				domainerror.ErrShareTooLarge,
			)
		}
		sumTil += til

		if o.IsSelling && (o.SoldAmount < 0 || math.IsNaN(o.SoldAmount)) {
			return domainerror.NewCalculationError(
				domainerror.ErrCodeNegativeSoldAmount,
				"invalid sold amount for owner "+o.Name,
				domainerror.ErrNegativeSoldAmount,
			)
		}
		sumSold += o.EffectiveSoldAmount()
		if math.IsInf(sumSold, 0) {
			return domainerror.NewCalculationError(
				domainerror.ErrCodeInvalidSoldAmount,
				"sold amount of owner "+o.Name+" is not a finite number",
				domainerror.ErrInvalidSoldAmount,
			)
		}
	}

	// Every land figure is bounded by the land of all shares together
	if math.IsInf(float64(sumTil)/valueobject.TilPerFullShare*totalArea, 0) {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeInvalidTotalArea,
			"total land area is out of range",
			domainerror.ErrInvalidTotalArea,
		)
	}

	return nil
}

// apportionment is the first-pass figure for one owner.
type apportionment struct {
	owner         Owner
	originalTil   int64
	originalLand  float64
	soldAmount    float64
	remainingLand float64
}

// ApportionShares converts every owner's share into land area and Hazari
// shares. It trusts its inputs: callers run ValidateInputs first, otherwise
// a zero totalArea yields NaN/Inf figures and oversized shares wrap. A non-nil warning is returned when
// the shares add up to more than one full share; results are produced anyway.
func ApportionShares(totalArea float64, owners []Owner, labels valueobject.TierLabels) ([]CalculationResult, *valueobject.ShareWarning) {
	var sumTil int64
	var sumRemaining float64

	// First pass: land per owner and running sums
	rows := make([]apportionment, len(owners))
	for i, owner := range owners {
		originalTil := owner.Share.ToTil()
		originalLand := float64(originalTil) / valueobject.TilPerFullShare * totalArea
		soldAmount := owner.EffectiveSoldAmount()
		remainingLand := math.Max(0, originalLand-soldAmount)

		sumTil += originalTil
		sumRemaining += remainingLand

		rows[i] = apportionment{
			owner:         owner,
			originalTil:   originalTil,
			originalLand:  originalLand,
			soldAmount:    soldAmount,
			remainingLand: remainingLand,
		}
	}

	var warning *valueobject.ShareWarning
	if sumTil > valueobject.TilPerFullShare {
		warning = &valueobject.ShareWarning{
			Threshold: valueobject.TilPerFullShare,
			Observed:  sumTil,
		}
	}

	// Second pass: both Hazari bases need the remaining-land sum
	results := make([]CalculationResult, len(rows))
	for i, r := range rows {
		hazari := r.remainingLand / totalArea * hazariBase

		relative := 0.0
		if sumRemaining > 0 {
			relative = r.remainingLand / sumRemaining * hazariBase
		}

		remainingShare := valueobject.FromTilFloat(r.remainingLand / totalArea * valueobject.TilPerFullShare)

		results[i] = CalculationResult{
			OwnerID:                 r.owner.ID,
			OwnerName:               r.owner.Name,
			OriginalTil:             r.originalTil,
			OriginalLand:            r.originalLand,
			SoldAmount:              r.soldAmount,
			RemainingLand:           r.remainingLand,
			HazariShare:             hazari,
			RelativeHazariShare:     relative,
			RemainingShare:          remainingShare,
			FormattedShare:          r.owner.Share.Format(labels),
			FormattedRemainingShare: remainingShare.Format(labels),
		}
	}

	return results, warning
}

// CalculationTotals aggregates result fields across owners.
type CalculationTotals struct {
	OriginalTil         int64
	OriginalLand        float64
	SoldAmount          float64
	RemainingLand       float64
	HazariShare         float64
	RelativeHazariShare float64
}

// SumResults adds up the result fields.
func SumResults(results []CalculationResult) CalculationTotals {
	var t CalculationTotals
	for _, r := range results {
		t.OriginalTil += r.OriginalTil
		t.OriginalLand += r.OriginalLand
		t.SoldAmount += r.SoldAmount
		t.RemainingLand += r.RemainingLand
		t.HazariShare += r.HazariShare
		t.RelativeHazariShare += r.RelativeHazariShare
	}
	return t
}

// Hazari returns the total Hazari for the display mode.
func (t CalculationTotals) Hazari(mode valueobject.HazariMode) float64 {
	if mode == valueobject.HazariModeRemaining {
		return t.RelativeHazariShare
	}
	return t.HazariShare
}

// Package conversion contains land unit conversion use cases.
package conversion

import (
	"context"

	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// ConvertToTilInput represents the input for converting a share to til.
type ConvertToTilInput struct {
	Units  valueobject.LandUnits
	Locale valueobject.Locale
}

// ConvertToTilOutput represents the output of a til conversion.
type ConvertToTilOutput struct {
	Til                 int64
	Normalized          valueobject.LandUnits
	Formatted           string
	FractionOfFullShare float64
	Canonical           bool
}

// ConvertToTilUseCase handles share to til conversion.
type ConvertToTilUseCase struct {
	defaultLocale valueobject.Locale
}

// NewConvertToTilUseCase creates a new ConvertToTilUseCase instance.
func NewConvertToTilUseCase(defaultLocale valueobject.Locale) *ConvertToTilUseCase {
	return &ConvertToTilUseCase{
		defaultLocale: resolveLocale(defaultLocale, valueobject.LocaleBengali),
	}
}

// Execute performs the conversion.
func (uc *ConvertToTilUseCase) Execute(ctx context.Context, input ConvertToTilInput) (*ConvertToTilOutput, error) {
	if err := input.Units.Validate(); err != nil {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeShare,
			err.Error(),
			domainerror.ErrNegativeShare,
		)
	}

	til, err := input.Units.CheckedTil()
	if err != nil {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeShareTooLarge,
			err.Error(),
			domainerror.ErrShareTooLarge,
		)
	}

	labels := resolveLocale(input.Locale, uc.defaultLocale).Labels()
	normalized := valueobject.FromTil(til)

	return &ConvertToTilOutput{
		Til:                 til,
		Normalized:          normalized,
		Formatted:           normalized.Format(labels),
		FractionOfFullShare: input.Units.FractionOfFullShare(),
		Canonical:           input.Units.IsCanonical(),
	}, nil
}

func resolveLocale(l, fallback valueobject.Locale) valueobject.Locale {
	if l.IsValid() {
		return l
	}
	return fallback
}

package conversion

import (
	"context"
	"fmt"

	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// ConvertFromTilInput represents the input for decomposing a til amount.
type ConvertFromTilInput struct {
	Til    int64
	Locale valueobject.Locale
}

// ConvertFromTilOutput represents the output of a til decomposition.
type ConvertFromTilOutput struct {
	Units     valueobject.LandUnits
	Formatted string
}

// ConvertFromTilUseCase handles til to share decomposition.
type ConvertFromTilUseCase struct {
	defaultLocale valueobject.Locale
}

// NewConvertFromTilUseCase creates a new ConvertFromTilUseCase instance.
func NewConvertFromTilUseCase(defaultLocale valueobject.Locale) *ConvertFromTilUseCase {
	return &ConvertFromTilUseCase{
		defaultLocale: resolveLocale(defaultLocale, valueobject.LocaleBengali),
	}
}

// Execute performs the decomposition.
func (uc *ConvertFromTilUseCase) Execute(ctx context.Context, input ConvertFromTilInput) (*ConvertFromTilOutput, error) {
	if input.Til < 0 {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeTil,
			fmt.Sprintf("til must not be negative, got %d", input.Til),
			domainerror.ErrNegativeTil,
		)
	}

	units := valueobject.FromTil(input.Til)
	return &ConvertFromTilOutput{
		Units:     units,
		Formatted: units.Format(resolveLocale(input.Locale, uc.defaultLocale).Labels()),
	}, nil
}

// Package calculation contains the khatiyan share calculation use case.
package calculation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/khatiyan/backend/internal/application/adapter"
	"github.com/khatiyan/backend/internal/domain/entity"
	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// Display precisions of the land and Hazari figures.
const (
	originalLandDigits  = 3
	soldAmountDigits    = 2
	remainingLandDigits = 4
	hazariDigits        = 3
	totalsDigits        = 2
	hazariTotalDigits   = 0
)

// OwnerInput represents one owner in a calculation request.
type OwnerInput struct {
	ID         uuid.UUID // Optional, generated when nil
	Name       string    // Optional, defaults to "মালিক N"
	Share      valueobject.LandUnits
	IsSelling  bool
	SoldAmount float64
}

// CalculateSharesInput represents the input for a share calculation.
type CalculateSharesInput struct {
	TotalArea  float64
	Owners     []OwnerInput
	HazariMode valueobject.HazariMode // Optional, defaults to the configured mode
	Locale     valueobject.Locale     // Optional, defaults to the configured locale
}

// OwnerDisplay contains locale-formatted figures for one owner.
type OwnerDisplay struct {
	OriginalLand  string
	SoldAmount    string
	RemainingLand string
	Hazari        string
}

// OwnerResult pairs a calculation result with its display values.
type OwnerResult struct {
	entity.CalculationResult
	DisplayHazari float64
	Display       OwnerDisplay
}

// TotalsDisplay contains locale-formatted totals.
type TotalsDisplay struct {
	TotalArea     string
	RemainingLand string
	SoldAmount    string
	Hazari        string
}

// Warning describes the advisory share-sum warning.
type Warning struct {
	Code      domainerror.CalculationErrorCode
	Threshold int64
	Observed  int64
	Excess    int64
	Message   string
}

// CalculateSharesOutput represents the output of a share calculation.
type CalculateSharesOutput struct {
	TotalArea          float64
	HazariMode         valueobject.HazariMode
	Locale             valueobject.Locale
	Results            []OwnerResult
	Totals             entity.CalculationTotals
	DisplayHazariTotal float64
	TotalsDisplay      TotalsDisplay
	Warning            *Warning
}

// Options holds the configurable defaults of the use case.
type Options struct {
	DefaultLocale     valueobject.Locale
	DefaultHazariMode valueobject.HazariMode
	MaxOwners         int // 0 means unlimited
}

// CalculateSharesUseCase handles share calculation logic.
type CalculateSharesUseCase struct {
	formatter adapter.NumberFormatter
	opts      Options
}

// NewCalculateSharesUseCase creates a new CalculateSharesUseCase instance.
func NewCalculateSharesUseCase(formatter adapter.NumberFormatter, opts Options) *CalculateSharesUseCase {
	if !opts.DefaultLocale.IsValid() {
		opts.DefaultLocale = valueobject.LocaleBengali
	}
	if !opts.DefaultHazariMode.IsValid() {
		opts.DefaultHazariMode = valueobject.HazariModeTotal
	}
	return &CalculateSharesUseCase{
		formatter: formatter,
		opts:      opts,
	}
}

// Execute performs the share calculation.
func (uc *CalculateSharesUseCase) Execute(ctx context.Context, input CalculateSharesInput) (*CalculateSharesOutput, error) {
	// Apply defaults
	locale := uc.opts.DefaultLocale
	if input.Locale != "" {
		if !input.Locale.IsValid() {
			return nil, domainerror.NewCalculationError(
				domainerror.ErrCodeInvalidRequest,
				"locale must be 'bn' or 'en'",
				nil,
			)
		}
		locale = input.Locale
	}

	mode := uc.opts.DefaultHazariMode
	if input.HazariMode != "" {
		if !input.HazariMode.IsValid() {
			return nil, domainerror.NewCalculationError(
				domainerror.ErrCodeInvalidRequest,
				"hazari mode must be 'total' or 'remaining'",
				nil,
			)
		}
		mode = input.HazariMode
	}

	if uc.opts.MaxOwners > 0 && len(input.Owners) > uc.opts.MaxOwners {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeTooManyOwners,
			fmt.Sprintf("at most %d owners are allowed", uc.opts.MaxOwners),
			domainerror.ErrTooManyOwners,
		)
	}

	// Build worksheet
	worksheet := entity.NewWorksheet(locale.Labels())
	worksheet.SetTotalArea(input.TotalArea)
	for _, o := range input.Owners {
		worksheet.AppendOwner(entity.Owner{
			ID:         o.ID,
			Name:       o.Name,
			Share:      o.Share,
			IsSelling:  o.IsSelling,
			SoldAmount: o.SoldAmount,
		})
	}

	if err := worksheet.Calculate(); err != nil {
		slog.InfoContext(ctx, "Calculation rejected",
			"error", err,
			"owners", len(input.Owners),
		)
		return nil, err
	}

	results, ok := worksheet.Results()
	if !ok {
		return nil, fmt.Errorf("worksheet has no results after calculation")
	}

	output := &CalculateSharesOutput{
		TotalArea:  worksheet.TotalArea(),
		HazariMode: mode,
		Locale:     locale,
		Results:    make([]OwnerResult, len(results)),
		Totals:     entity.SumResults(results),
	}

	for i, r := range results {
		hazari := r.Hazari(mode)
		output.Results[i] = OwnerResult{
			CalculationResult: r,
			DisplayHazari:     hazari,
			Display: OwnerDisplay{
				OriginalLand:  uc.formatter.FormatDecimal(r.OriginalLand, originalLandDigits),
				SoldAmount:    uc.formatter.FormatDecimal(r.SoldAmount, soldAmountDigits),
				RemainingLand: uc.formatter.FormatDecimal(r.RemainingLand, remainingLandDigits),
				Hazari:        uc.formatter.FormatDecimal(hazari, hazariDigits),
			},
		}
	}

	output.DisplayHazariTotal = output.Totals.Hazari(mode)
	output.TotalsDisplay = TotalsDisplay{
		TotalArea:     uc.formatter.FormatDecimal(output.TotalArea, totalsDigits),
		RemainingLand: uc.formatter.FormatDecimal(output.Totals.RemainingLand, totalsDigits),
		SoldAmount:    uc.formatter.FormatDecimal(output.Totals.SoldAmount, totalsDigits),
		Hazari:        uc.formatter.FormatDecimal(output.DisplayHazariTotal, hazariTotalDigits),
	}

	if w := worksheet.Warning(); w != nil {
		output.Warning = &Warning{
			Code:      domainerror.ErrCodeShareSumExceeded,
			Threshold: w.Threshold,
			Observed:  w.Observed,
			Excess:    w.Excess(),
			Message:   w.Message(locale),
		}
		slog.WarnContext(ctx, "Share sum exceeds one full share",
			"threshold_til", w.Threshold,
			"observed_til", w.Observed,
		)
	}

	slog.InfoContext(ctx, "Shares calculated",
		"owners", len(output.Results),
		"total_area", input.TotalArea,
		"hazari_mode", string(mode),
	)

	return output, nil
}

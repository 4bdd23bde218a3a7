package calculation

import (
	"context"
	"fmt"

	"github.com/khatiyan/backend/internal/application/adapter"
	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// reportText holds the fixed captions of a report in one locale.
type reportText struct {
	title         string
	areaUnit      string
	totalMode     string
	remainingMode string
	totalNote     string
	remainingNote string
	hazariBase    string
	headings      adapter.ReportHeadings
}

var reportTexts = map[valueobject.Locale]reportText{
	valueobject.LocaleBengali: {
		title:         "হিসাবের ফলাফল",
		areaUnit:      "শতক",
		totalMode:     "মোট জমির ভিত্তিতে",
		remainingMode: "অবশিষ্ট জমির ভিত্তিতে",
		totalNote:     "হাজারী হিস্যা খতিয়ানের মূল ১০০% জমির সাপেক্ষে দেখানো হচ্ছে।",
		remainingNote: "হাজারী হিস্যা বর্তমানে অবশিষ্ট থাকা মোট জমির (১০০%) সাপেক্ষে সমন্বয় করা হয়েছে।",
		hazariBase:    "১০০০",
		headings: adapter.ReportHeadings{
			TotalArea:      "খতিয়ানের মোট জমি",
			Owner:          "মালিক",
			Share:          "মূল খতিয়ান অংশ",
			OriginalLand:   "মূল জমি",
			Sold:           "বিক্রিত",
			RemainingLand:  "অবশিষ্ট জমি",
			RemainingShare: "অবশিষ্ট অংশ",
			Hazari:         "হাজারী",
			RemainingTotal: "অবশিষ্ট মোট জমি",
			SoldTotal:      "মোট বিক্রিত জমি",
			HazariTotal:    "মোট হাজারী",
		},
	},
	valueobject.LocaleEnglish: {
		title:         "Calculation result",
		areaUnit:      "decimal",
		totalMode:     "Based on total land",
		remainingMode: "Based on remaining land",
		totalNote:     "Hazari shares are shown against the original 100% of the khatiyan land.",
		remainingNote: "Hazari shares are rescaled against the land that currently remains (100%).",
		hazariBase:    "1000",
		headings: adapter.ReportHeadings{
			TotalArea:      "Total land",
			Owner:          "Owner",
			Share:          "Original share",
			OriginalLand:   "Original land",
			Sold:           "Sold",
			RemainingLand:  "Remaining land",
			RemainingShare: "Remaining share",
			Hazari:         "Hazari",
			RemainingTotal: "Total remaining land",
			SoldTotal:      "Total sold land",
			HazariTotal:    "Total Hazari",
		},
	},
}

// RenderReportInput represents the input for rendering a calculation report.
type RenderReportInput struct {
	Calculation CalculateSharesInput
	Format      adapter.ReportFormat // Optional, defaults to HTML
}

// RenderReportOutput represents a rendered calculation report.
type RenderReportOutput struct {
	Format  adapter.ReportFormat
	Content string
	Warning *Warning
}

// RenderReportUseCase renders a share calculation as a printable report.
type RenderReportUseCase struct {
	calculateUseCase *CalculateSharesUseCase
	renderer         adapter.ReportRenderer
}

// NewRenderReportUseCase creates a new RenderReportUseCase instance.
func NewRenderReportUseCase(calculateUseCase *CalculateSharesUseCase, renderer adapter.ReportRenderer) *RenderReportUseCase {
	return &RenderReportUseCase{
		calculateUseCase: calculateUseCase,
		renderer:         renderer,
	}
}

// Execute calculates the shares and renders the report.
func (uc *RenderReportUseCase) Execute(ctx context.Context, input RenderReportInput) (*RenderReportOutput, error) {
	format := input.Format
	if format == "" {
		format = adapter.ReportFormatHTML
	}
	if !format.IsValid() {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeInvalidRequest,
			"format must be 'html' or 'text'",
			nil,
		)
	}

	output, err := uc.calculateUseCase.Execute(ctx, input.Calculation)
	if err != nil {
		return nil, err
	}

	content, err := uc.renderer.Render(format, buildReport(output))
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &RenderReportOutput{
		Format:  format,
		Content: content,
		Warning: output.Warning,
	}, nil
}

// buildReport maps a calculation output to the report view model.
func buildReport(output *CalculateSharesOutput) adapter.CalculationReport {
	text, ok := reportTexts[output.Locale]
	if !ok {
		text = reportTexts[valueobject.LocaleBengali]
	}

	report := adapter.CalculationReport{
		Lang:           string(output.Locale),
		Title:          text.title,
		AreaUnit:       text.areaUnit,
		ModeLabel:      text.totalMode,
		ModeNote:       text.totalNote,
		HazariBase:     text.hazariBase,
		Headings:       text.headings,
		TotalArea:      output.TotalsDisplay.TotalArea,
		Owners:         make([]adapter.ReportOwner, len(output.Results)),
		RemainingTotal: output.TotalsDisplay.RemainingLand,
		SoldTotal:      output.TotalsDisplay.SoldAmount,
		HazariTotal:    output.TotalsDisplay.Hazari,
	}
	if output.HazariMode == valueobject.HazariModeRemaining {
		report.ModeLabel = text.remainingMode
		report.ModeNote = text.remainingNote
	}
	if output.Warning != nil {
		report.Warning = output.Warning.Message
	}

	for i, r := range output.Results {
		report.Owners[i] = adapter.ReportOwner{
			Name:           r.OwnerName,
			Share:          r.FormattedShare,
			OriginalLand:   r.Display.OriginalLand,
			Sold:           r.Display.SoldAmount,
			HasSale:        r.SoldAmount > 0,
			RemainingLand:  r.Display.RemainingLand,
			RemainingShare: r.FormattedRemainingShare,
			Hazari:         r.Display.Hazari,
		}
	}

	return report
}

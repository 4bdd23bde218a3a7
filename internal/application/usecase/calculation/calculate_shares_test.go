package calculation

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// plainFormatter formats with strconv so tests do not depend on locale data.
type plainFormatter struct{}

func (plainFormatter) FormatDecimal(value float64, fractionDigits int) string {
	return strconv.FormatFloat(value, 'f', fractionDigits, 64)
}

func (plainFormatter) Locale() string { return "und" }

func newUseCase(opts Options) *CalculateSharesUseCase {
	return NewCalculateSharesUseCase(plainFormatter{}, opts)
}

func twoOwnerInput() CalculateSharesInput {
	return CalculateSharesInput{
		TotalArea: 100,
		Owners: []OwnerInput{
			{Name: "A", Share: valueobject.LandUnits{Ana: 8}, IsSelling: true, SoldAmount: 20},
			{Name: "B", Share: valueobject.LandUnits{Ana: 8}},
		},
		Locale: valueobject.LocaleEnglish,
	}
}

func TestCalculateSharesUseCase_TotalMode(t *testing.T) {
	uc := newUseCase(Options{})

	output, err := uc.Execute(context.Background(), twoOwnerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.HazariMode != valueobject.HazariModeTotal {
		t.Errorf("expected default mode total, got %s", output.HazariMode)
	}
	if output.Warning != nil {
		t.Errorf("expected no warning, got %+v", output.Warning)
	}
	if len(output.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(output.Results))
	}

	a := output.Results[0]
	if a.Display.OriginalLand != "50.000" {
		t.Errorf("expected original land 50.000, got %s", a.Display.OriginalLand)
	}
	if a.Display.SoldAmount != "20.00" {
		t.Errorf("expected sold 20.00, got %s", a.Display.SoldAmount)
	}
	if a.Display.RemainingLand != "30.0000" {
		t.Errorf("expected remaining 30.0000, got %s", a.Display.RemainingLand)
	}
	if a.Display.Hazari != "300.000" {
		t.Errorf("expected hazari 300.000, got %s", a.Display.Hazari)
	}
	if a.FormattedShare != "8 ana" {
		t.Errorf("expected English formatted share, got %q", a.FormattedShare)
	}

	if output.TotalsDisplay.Hazari != "800" {
		t.Errorf("expected hazari total 800, got %s", output.TotalsDisplay.Hazari)
	}
	if output.TotalsDisplay.RemainingLand != "80.00" {
		t.Errorf("expected remaining total 80.00, got %s", output.TotalsDisplay.RemainingLand)
	}
	if output.TotalsDisplay.SoldAmount != "20.00" {
		t.Errorf("expected sold total 20.00, got %s", output.TotalsDisplay.SoldAmount)
	}
}

func TestCalculateSharesUseCase_RemainingMode(t *testing.T) {
	uc := newUseCase(Options{})
	input := twoOwnerInput()
	input.HazariMode = valueobject.HazariModeRemaining

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(output.Results[0].DisplayHazari-375) > 1e-9 {
		t.Errorf("expected relative hazari 375, got %v", output.Results[0].DisplayHazari)
	}
	if math.Abs(output.Results[1].DisplayHazari-625) > 1e-9 {
		t.Errorf("expected relative hazari 625, got %v", output.Results[1].DisplayHazari)
	}
	if output.TotalsDisplay.Hazari != "1000" {
		t.Errorf("expected hazari total 1000, got %s", output.TotalsDisplay.Hazari)
	}
	if math.Abs(output.Results[0].HazariShare-300) > 1e-9 {
		t.Error("expected both Hazari variants to be present in the result")
	}
}

func TestCalculateSharesUseCase_DefaultsFromOptions(t *testing.T) {
	uc := newUseCase(Options{
		DefaultLocale:     valueobject.LocaleBengali,
		DefaultHazariMode: valueobject.HazariModeRemaining,
	})

	output, err := uc.Execute(context.Background(), CalculateSharesInput{
		TotalArea: 10,
		Owners:    []OwnerInput{{Share: valueobject.FullShare()}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Locale != valueobject.LocaleBengali || output.HazariMode != valueobject.HazariModeRemaining {
		t.Errorf("expected configured defaults, got %s/%s", output.Locale, output.HazariMode)
	}
	if output.Results[0].OwnerName != "মালিক 1" {
		t.Errorf("expected default Bengali owner name, got %q", output.Results[0].OwnerName)
	}
	if output.Results[0].FormattedShare != "16 আনা" {
		t.Errorf("expected Bengali formatted share, got %q", output.Results[0].FormattedShare)
	}
	if output.Results[0].OwnerID == uuid.Nil {
		t.Error("expected a generated owner id")
	}
}

func TestCalculateSharesUseCase_KeepsOwnerID(t *testing.T) {
	uc := newUseCase(Options{})
	id := uuid.New()

	output, err := uc.Execute(context.Background(), CalculateSharesInput{
		TotalArea: 10,
		Owners:    []OwnerInput{{ID: id, Name: "A", Share: valueobject.FullShare()}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Results[0].OwnerID != id {
		t.Errorf("expected owner id %s, got %s", id, output.Results[0].OwnerID)
	}
}

func TestCalculateSharesUseCase_Warning(t *testing.T) {
	uc := newUseCase(Options{})

	output, err := uc.Execute(context.Background(), CalculateSharesInput{
		TotalArea: 100,
		Owners: []OwnerInput{
			{Name: "A", Share: valueobject.LandUnits{Ana: 12}},
			{Name: "B", Share: valueobject.LandUnits{Ana: 8}},
		},
		Locale: valueobject.LocaleEnglish,
	})
	if err != nil {
		t.Fatalf("expected warning not to block, got %v", err)
	}

	if output.Warning == nil {
		t.Fatal("expected warning")
	}
	if output.Warning.Code != domainerror.ErrCodeShareSumExceeded {
		t.Errorf("unexpected warning code %s", output.Warning.Code)
	}
	if output.Warning.Observed != 96000 || output.Warning.Threshold != 76800 || output.Warning.Excess != 19200 {
		t.Errorf("unexpected warning sums %+v", output.Warning)
	}
	if output.Warning.Message == "" {
		t.Error("expected warning message")
	}
	if len(output.Results) != 2 {
		t.Errorf("expected results alongside the warning, got %d", len(output.Results))
	}
}

func TestCalculateSharesUseCase_Errors(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		input        CalculateSharesInput
		expectedCode domainerror.CalculationErrorCode
		expectedErr  error
	}{
		{
			name:         "zero total area",
			input:        CalculateSharesInput{TotalArea: 0, Owners: []OwnerInput{{Share: valueobject.FullShare()}}},
			expectedCode: domainerror.ErrCodeInvalidTotalArea,
			expectedErr:  domainerror.ErrInvalidTotalArea,
		},
		{
			name:         "empty owner list",
			input:        CalculateSharesInput{TotalArea: 100},
			expectedCode: domainerror.ErrCodeNoOwners,
			expectedErr:  domainerror.ErrNoOwners,
		},
		{
			name:         "too many owners",
			opts:         Options{MaxOwners: 1},
			input:        CalculateSharesInput{TotalArea: 100, Owners: []OwnerInput{{}, {}}},
			expectedCode: domainerror.ErrCodeTooManyOwners,
			expectedErr:  domainerror.ErrTooManyOwners,
		},
		{
			name:         "invalid hazari mode",
			input:        CalculateSharesInput{TotalArea: 100, Owners: []OwnerInput{{}}, HazariMode: "relative"},
			expectedCode: domainerror.ErrCodeInvalidRequest,
		},
		{
			name:         "invalid locale",
			input:        CalculateSharesInput{TotalArea: 100, Owners: []OwnerInput{{}}, Locale: "fr"},
			expectedCode: domainerror.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.opts)

			output, err := uc.Execute(context.Background(), tt.input)
			if output != nil {
				t.Error("expected no output on a blocking error")
			}

			var calcErr *domainerror.CalculationError
			if !errors.As(err, &calcErr) {
				t.Fatalf("expected CalculationError, got %v", err)
			}
			if calcErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, calcErr.Code)
			}
			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

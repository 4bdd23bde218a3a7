package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/khatiyan/backend/internal/application/adapter"
	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// recordingRenderer keeps the last report it was asked to render.
type recordingRenderer struct {
	format adapter.ReportFormat
	report adapter.CalculationReport
	err    error
}

func (r *recordingRenderer) Render(format adapter.ReportFormat, report adapter.CalculationReport) (string, error) {
	r.format = format
	r.report = report
	if r.err != nil {
		return "", r.err
	}
	return "rendered:" + string(format), nil
}

func TestRenderReportUseCase_Execute(t *testing.T) {
	renderer := &recordingRenderer{}
	uc := NewRenderReportUseCase(newUseCase(Options{}), renderer)

	input := twoOwnerInput()
	input.HazariMode = valueobject.HazariModeRemaining

	output, err := uc.Execute(context.Background(), RenderReportInput{Calculation: input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Format != adapter.ReportFormatHTML || output.Content != "rendered:html" {
		t.Errorf("expected default HTML rendering, got %s/%q", output.Format, output.Content)
	}

	report := renderer.report
	if report.Lang != "en" || report.Title != "Calculation result" {
		t.Errorf("expected English captions, got %s/%q", report.Lang, report.Title)
	}
	if report.ModeLabel != "Based on remaining land" {
		t.Errorf("expected remaining mode label, got %q", report.ModeLabel)
	}
	if report.TotalArea != "100.00" || report.HazariTotal != "1000" {
		t.Errorf("unexpected totals %q / %q", report.TotalArea, report.HazariTotal)
	}
	if len(report.Owners) != 2 {
		t.Fatalf("expected 2 owner rows, got %d", len(report.Owners))
	}
	if !report.Owners[0].HasSale || report.Owners[1].HasSale {
		t.Error("expected only the selling owner to show a sale")
	}
	if report.Owners[0].Hazari != "375.000" {
		t.Errorf("expected relative Hazari in the row, got %q", report.Owners[0].Hazari)
	}
	if report.Warning != "" {
		t.Errorf("expected no warning, got %q", report.Warning)
	}
}

func TestRenderReportUseCase_BengaliWarning(t *testing.T) {
	renderer := &recordingRenderer{}
	uc := NewRenderReportUseCase(newUseCase(Options{}), renderer)

	output, err := uc.Execute(context.Background(), RenderReportInput{
		Calculation: CalculateSharesInput{
			TotalArea: 10,
			Owners: []OwnerInput{
				{Share: valueobject.FullShare()},
				{Share: valueobject.LandUnits{Ana: 1}},
			},
		},
		Format: adapter.ReportFormatText,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if renderer.format != adapter.ReportFormatText {
		t.Errorf("expected text format, got %s", renderer.format)
	}
	if renderer.report.AreaUnit != "শতক" || renderer.report.HazariBase != "১০০০" {
		t.Errorf("expected Bengali captions, got %q / %q", renderer.report.AreaUnit, renderer.report.HazariBase)
	}
	if renderer.report.Warning == "" || output.Warning == nil {
		t.Error("expected warning to reach the report and the output")
	}
}

func TestRenderReportUseCase_Errors(t *testing.T) {
	t.Run("unsupported format", func(t *testing.T) {
		uc := NewRenderReportUseCase(newUseCase(Options{}), &recordingRenderer{})

		_, err := uc.Execute(context.Background(), RenderReportInput{Calculation: twoOwnerInput(), Format: "pdf"})

		var calcErr *domainerror.CalculationError
		if !errors.As(err, &calcErr) || calcErr.Code != domainerror.ErrCodeInvalidRequest {
			t.Errorf("expected invalid request error, got %v", err)
		}
	})

	t.Run("blocking calculation error", func(t *testing.T) {
		renderer := &recordingRenderer{}
		uc := NewRenderReportUseCase(newUseCase(Options{}), renderer)

		_, err := uc.Execute(context.Background(), RenderReportInput{Calculation: CalculateSharesInput{TotalArea: 10}})
		if !errors.Is(err, domainerror.ErrNoOwners) {
			t.Errorf("expected ErrNoOwners, got %v", err)
		}
		if renderer.format != "" {
			t.Error("expected renderer not to be called")
		}
	})

	t.Run("renderer failure", func(t *testing.T) {
		failure := errors.New("template broken")
		uc := NewRenderReportUseCase(newUseCase(Options{}), &recordingRenderer{err: failure})

		_, err := uc.Execute(context.Background(), RenderReportInput{Calculation: twoOwnerInput()})
		if !errors.Is(err, failure) {
			t.Errorf("expected wrapped renderer error, got %v", err)
		}
	})
}

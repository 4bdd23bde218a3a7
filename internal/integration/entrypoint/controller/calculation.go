package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khatiyan/backend/internal/application/adapter"
	"github.com/khatiyan/backend/internal/application/usecase/calculation"
	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
	"github.com/khatiyan/backend/internal/integration/entrypoint/dto"
)

// WarningCodeHeader carries the advisory warning code of a rendered report.
const WarningCodeHeader = "X-Khatiyan-Warning"

// CalculationController handles share calculation endpoints.
type CalculationController struct {
	calculateUseCase *calculation.CalculateSharesUseCase
	reportUseCase    *calculation.RenderReportUseCase
	defaultLocale    valueobject.Locale
}

// NewCalculationController creates a new calculation controller instance.
func NewCalculationController(
	calculateUseCase *calculation.CalculateSharesUseCase,
	reportUseCase *calculation.RenderReportUseCase,
	defaultLocale valueobject.Locale,
) *CalculationController {
	return &CalculationController{
		calculateUseCase: calculateUseCase,
		reportUseCase:    reportUseCase,
		defaultLocale:    defaultLocale,
	}
}

// Calculate handles POST /calculations requests.
func (c *CalculationController) Calculate(ctx *gin.Context) {
	input, locale, ok := c.bindCalculationInput(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCalculationError(ctx, err, locale)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalculationResponse(output))
}

// Report handles POST /calculations/report requests.
// The format query parameter selects html (default) or text output.
func (c *CalculationController) Report(ctx *gin.Context) {
	input, locale, ok := c.bindCalculationInput(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), calculation.RenderReportInput{
		Calculation: input,
		Format:      adapter.ReportFormat(ctx.DefaultQuery("format", string(adapter.ReportFormatHTML))),
	})
	if err != nil {
		handleCalculationError(ctx, err, locale)
		return
	}

	if output.Warning != nil {
		ctx.Header(WarningCodeHeader, string(output.Warning.Code))
	}

	contentType := "text/html; charset=utf-8"
	if output.Format == adapter.ReportFormatText {
		contentType = "text/plain; charset=utf-8"
	}
	ctx.Data(http.StatusOK, contentType, []byte(output.Content))
}

// bindCalculationInput parses the request body into use case input.
// It writes the error response itself and reports false on failure.
func (c *CalculationController) bindCalculationInput(ctx *gin.Context) (calculation.CalculateSharesInput, valueobject.Locale, bool) {
	// Parse request body
	var req dto.CalculationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return calculation.CalculateSharesInput{}, "", false
	}

	locale := c.defaultLocale
	if req.Locale != "" {
		locale = valueobject.Locale(req.Locale)
	}

	// Build input
	input := calculation.CalculateSharesInput{
		TotalArea:  req.TotalArea.InexactFloat64(),
		Owners:     make([]calculation.OwnerInput, len(req.Owners)),
		HazariMode: valueobject.HazariMode(req.HazariMode),
		Locale:     valueobject.Locale(req.Locale),
	}

	for i, o := range req.Owners {
		var ownerID uuid.UUID
		if o.ID != "" {
			parsed, err := uuid.Parse(o.ID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid owner ID format",
					Code:  string(domainerror.ErrCodeInvalidRequest),
				})
				return calculation.CalculateSharesInput{}, "", false
			}
			ownerID = parsed
		}

		input.Owners[i] = calculation.OwnerInput{
			ID:         ownerID,
			Name:       o.Name,
			Share:      o.Share.ToLandUnits(),
			IsSelling:  o.IsSelling,
			SoldAmount: o.SoldAmount.InexactFloat64(),
		}
	}

	return input, locale, true
}

// handleBindError answers a request body that could not be bound. Bodies cut
// off by the body limit middleware get 413, everything else 400.
func handleBindError(ctx *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "Request body too large",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  string(domainerror.ErrCodeInvalidRequest),
	})
}

// handleCalculationError handles calculation errors and returns appropriate HTTP responses.
func handleCalculationError(ctx *gin.Context, err error, locale valueobject.Locale) {
	var calcErr *domainerror.CalculationError
	if errors.As(err, &calcErr) {
		response := dto.ErrorResponse{
			Error: calcErr.Message,
			Code:  string(calcErr.Code),
		}
		if locale == valueobject.LocaleBengali {
			response.Details = domainerror.UserMessage(calcErr.Code, "")
		}
		ctx.JSON(statusCodeForCalculationError(calcErr.Code), response)
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForCalculationError maps calculation error codes to HTTP status codes.
func statusCodeForCalculationError(code domainerror.CalculationErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case domainerror.ErrCodeOwnerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTotalArea,
		domainerror.ErrCodeNoOwners,
		domainerror.ErrCodeNegativeShare,
		domainerror.ErrCodeNegativeSoldAmount,
		domainerror.ErrCodeNegativeTil,
		domainerror.ErrCodeTooManyOwners,
		domainerror.ErrCodeShareTooLarge,
		domainerror.ErrCodeInvalidSoldAmount:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

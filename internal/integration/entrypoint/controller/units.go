package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatiyan/backend/internal/application/usecase/conversion"
	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
	"github.com/khatiyan/backend/internal/integration/entrypoint/dto"
)

// UnitController handles land unit conversion endpoints.
type UnitController struct {
	toTilUseCase   *conversion.ConvertToTilUseCase
	fromTilUseCase *conversion.ConvertFromTilUseCase
	defaultLocale  valueobject.Locale
}

// NewUnitController creates a new unit controller instance.
func NewUnitController(
	toTilUseCase *conversion.ConvertToTilUseCase,
	fromTilUseCase *conversion.ConvertFromTilUseCase,
	defaultLocale valueobject.Locale,
) *UnitController {
	return &UnitController{
		toTilUseCase:   toTilUseCase,
		fromTilUseCase: fromTilUseCase,
		defaultLocale:  defaultLocale,
	}
}

// ToTil handles POST /units/to-til requests.
func (c *UnitController) ToTil(ctx *gin.Context) {
	var req dto.ToTilRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	output, err := c.toTilUseCase.Execute(ctx.Request.Context(), conversion.ConvertToTilInput{
		Units:  req.ToLandUnits(),
		Locale: valueobject.Locale(req.Locale),
	})
	if err != nil {
		handleCalculationError(ctx, err, c.localeOrDefault(req.Locale))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToToTilResponse(output))
}

// FromTil handles POST /units/from-til requests.
func (c *UnitController) FromTil(ctx *gin.Context) {
	var req dto.FromTilRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	// Fractional til counts are rejected rather than rounded
	if !req.Til.IsInteger() || !req.Til.BigInt().IsInt64() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "til must be a whole number",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}
	til := req.Til.IntPart()

	output, err := c.fromTilUseCase.Execute(ctx.Request.Context(), conversion.ConvertFromTilInput{
		Til:    til,
		Locale: valueobject.Locale(req.Locale),
	})
	if err != nil {
		handleCalculationError(ctx, err, c.localeOrDefault(req.Locale))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFromTilResponse(til, output))
}

// Scale handles GET /units/scale requests.
func (c *UnitController) Scale(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToScaleResponse(valueobject.Scale()))
}

func (c *UnitController) localeOrDefault(locale string) valueobject.Locale {
	if locale == "" {
		return c.defaultLocale
	}
	return valueobject.Locale(locale)
}

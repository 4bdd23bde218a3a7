package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khatiyan/backend/internal/application/usecase/calculation"
)

// CalculationRequest represents the request body for POST /calculations.
// Decimal fields accept a JSON number or string.
type CalculationRequest struct {
	TotalArea  decimal.Decimal `json:"total_area"`
	Owners     []OwnerRequest  `json:"owners" binding:"dive"`
	HazariMode string          `json:"hazari_mode,omitempty" binding:"omitempty,oneof=total remaining"`
	Locale     string          `json:"locale,omitempty" binding:"omitempty,oneof=bn en"`
}

// OwnerRequest represents one owner in a calculation request.
type OwnerRequest struct {
	ID         string           `json:"id,omitempty" binding:"omitempty,uuid"`
	Name       string           `json:"name,omitempty" binding:"max=200"`
	Share      LandUnitsRequest `json:"share"`
	IsSelling  bool             `json:"is_selling"`
	SoldAmount decimal.Decimal  `json:"sold_amount"`
}

// OwnerDisplayResponse contains locale-formatted owner figures.
type OwnerDisplayResponse struct {
	OriginalLand  string `json:"original_land"`
	SoldAmount    string `json:"sold_amount"`
	RemainingLand string `json:"remaining_land"`
	Hazari        string `json:"hazari"`
}

// OwnerResultResponse represents one owner's result in API responses.
type OwnerResultResponse struct {
	OwnerID                 string               `json:"owner_id"`
	OwnerName               string               `json:"owner_name"`
	OriginalTil             int64                `json:"original_til"`
	OriginalLand            float64              `json:"original_land"`
	SoldAmount              float64              `json:"sold_amount"`
	RemainingLand           float64              `json:"remaining_land"`
	HazariShare             float64              `json:"hazari_share"`
	RelativeHazariShare     float64              `json:"relative_hazari_share"`
	Hazari                  float64              `json:"hazari"`
	RemainingShare          LandUnitsResponse    `json:"remaining_share"`
	FormattedShare          string               `json:"formatted_share"`
	FormattedRemainingShare string               `json:"formatted_remaining_share"`
	Display                 OwnerDisplayResponse `json:"display"`
}

// TotalsDisplayResponse contains locale-formatted totals.
type TotalsDisplayResponse struct {
	TotalArea     string `json:"total_area"`
	RemainingLand string `json:"remaining_land"`
	SoldAmount    string `json:"sold_amount"`
	Hazari        string `json:"hazari"`
}

// TotalsResponse represents the column totals of a calculation.
type TotalsResponse struct {
	OriginalTil         int64                 `json:"original_til"`
	OriginalLand        float64               `json:"original_land"`
	SoldAmount          float64               `json:"sold_amount"`
	RemainingLand       float64               `json:"remaining_land"`
	HazariShare         float64               `json:"hazari_share"`
	RelativeHazariShare float64               `json:"relative_hazari_share"`
	Hazari              float64               `json:"hazari"`
	Display             TotalsDisplayResponse `json:"display"`
}

// WarningResponse represents the advisory share-sum warning.
type WarningResponse struct {
	Code      string `json:"code"`
	Threshold int64  `json:"threshold"`
	Observed  int64  `json:"observed"`
	Excess    int64  `json:"excess"`
	Message   string `json:"message"`
}

// CalculationResponse represents the response of a share calculation.
type CalculationResponse struct {
	TotalArea  float64               `json:"total_area"`
	HazariMode string                `json:"hazari_mode"`
	Locale     string                `json:"locale"`
	Results    []OwnerResultResponse `json:"results"`
	Totals     TotalsResponse        `json:"totals"`
	Warning    *WarningResponse      `json:"warning,omitempty"`
}

// ToCalculationResponse converts the use case output to a CalculationResponse DTO.
func ToCalculationResponse(output *calculation.CalculateSharesOutput) CalculationResponse {
	response := CalculationResponse{
		TotalArea:  output.TotalArea,
		HazariMode: string(output.HazariMode),
		Locale:     string(output.Locale),
		Results:    make([]OwnerResultResponse, len(output.Results)),
		Totals: TotalsResponse{
			OriginalTil:         output.Totals.OriginalTil,
			OriginalLand:        output.Totals.OriginalLand,
			SoldAmount:          output.Totals.SoldAmount,
			RemainingLand:       output.Totals.RemainingLand,
			HazariShare:         output.Totals.HazariShare,
			RelativeHazariShare: output.Totals.RelativeHazariShare,
			Hazari:              output.DisplayHazariTotal,
			Display: TotalsDisplayResponse{
				TotalArea:     output.TotalsDisplay.TotalArea,
				RemainingLand: output.TotalsDisplay.RemainingLand,
				SoldAmount:    output.TotalsDisplay.SoldAmount,
				Hazari:        output.TotalsDisplay.Hazari,
			},
		},
	}

	for i, r := range output.Results {
		response.Results[i] = OwnerResultResponse{
			OwnerID:                 r.OwnerID.String(),
			OwnerName:               r.OwnerName,
			OriginalTil:             r.OriginalTil,
			OriginalLand:            r.OriginalLand,
			SoldAmount:              r.SoldAmount,
			RemainingLand:           r.RemainingLand,
			HazariShare:             r.HazariShare,
			RelativeHazariShare:     r.RelativeHazariShare,
			Hazari:                  r.DisplayHazari,
			RemainingShare:          ToLandUnitsResponse(r.RemainingShare),
			FormattedShare:          r.FormattedShare,
			FormattedRemainingShare: r.FormattedRemainingShare,
			Display: OwnerDisplayResponse{
				OriginalLand:  r.Display.OriginalLand,
				SoldAmount:    r.Display.SoldAmount,
				RemainingLand: r.Display.RemainingLand,
				Hazari:        r.Display.Hazari,
			},
		}
	}

	if output.Warning != nil {
		response.Warning = &WarningResponse{
			Code:      string(output.Warning.Code),
			Threshold: output.Warning.Threshold,
			Observed:  output.Warning.Observed,
			Excess:    output.Warning.Excess,
			Message:   output.Warning.Message,
		}
	}

	return response
}

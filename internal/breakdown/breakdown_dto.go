package breakdown

import "github.com/shopspring/decimal"

type PreviewRequest struct {
	Form         FormState           `json:"form"`
	Reservations []BudgetReservation `json:"reservations"`
}

type BreakdownResponse struct {
	Groups []PartidaGroup `json:"groups"`
	Totals Totals         `json:"totals"`
}

type PerDiemDerivationRequest struct {
	ConceptID   int64            `json:"concept_id" binding:"required"`
	Destination DestinationType  `json:"destination" binding:"required,oneof=INSTITUCIONAL TERCEROS"`
	Days        int              `json:"days"`
	Persons     int              `json:"persons"`
	Activity    *PlannedActivity `json:"activity"`
}

type PerDiemDerivationResponse struct {
	ConceptName  string          `json:"concept_name"`
	Days         int             `json:"days"`
	Persons      int             `json:"persons"`
	UnitRate     decimal.Decimal `json:"unit_rate"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	LiquidAmount decimal.Decimal `json:"liquid_amount"`
}

type ExpenseDerivationRequest struct {
	CategoryID   int64           `json:"category_id" binding:"required"`
	DocumentType DocumentType    `json:"document_type" binding:"required,oneof=FACTURA RECIBO"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
}

type ExpenseDerivationResponse struct {
	CategoryName    string          `json:"category_name"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	LiquidAmount    decimal.Decimal `json:"liquid_amount"`
	WithholdingRate decimal.Decimal `json:"withholding_rate"`
	Taxes           Taxes           `json:"taxes"`
}

type PayrollValidationRequest struct {
	FullName     string          `json:"full_name" binding:"required"`
	Institution  string          `json:"institution"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	LiquidAmount decimal.Decimal `json:"liquid_amount"`
}

type PayrollValidationResponse struct {
	Valid bool `json:"valid"`
}

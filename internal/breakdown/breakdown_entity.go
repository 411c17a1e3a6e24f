package breakdown

import "github.com/shopspring/decimal"

type DestinationType string

const (
	DestinationInstitutional DestinationType = "INSTITUCIONAL"
	DestinationThirdParty    DestinationType = "TERCEROS"
)

type DocumentType string

const (
	DocumentInvoice DocumentType = "FACTURA"
	DocumentReceipt DocumentType = "RECIBO"
)

// PartidaCategory is the explicit classification of a budget line. When the
// catalog does not send one, the partida name decides (see IsPerDiemPartida).
type PartidaCategory string

const (
	PartidaCategoryPerDiem PartidaCategory = "VIATICOS"
	PartidaCategoryExpense PartidaCategory = "GASTOS"
)

// Fallback labels used when a catalog lookup misses.
const (
	GenericPerDiemLabel = "Viático"
	GenericExpenseLabel = "Gasto"
	GenericPayrollLabel = "Participante"
)

type PerDiemConcept struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	InstitutionalRate *string `json:"institutional_rate,omitempty"`
	ThirdPartyRate    *string `json:"third_party_rate,omitempty"`
}

type ExpenseCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BudgetReservation is a claim against one POA budget line for the lifetime
// of a request.
type BudgetReservation struct {
	ID               int64           `json:"id"`
	BudgetLineID     int64           `json:"budget_line_id"`
	PartidaName      string          `json:"partida_name"`
	Category         PartidaCategory `json:"category,omitempty"`
	ReservedAmount   decimal.Decimal `json:"reserved_amount"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

// PlannedActivity is one row of the request's planning. ID is stable from
// the moment the draft is created.
type PlannedActivity struct {
	ID                     string `json:"id"`
	Description            string `json:"description"`
	StartDate              string `json:"start_date"`
	EndDate                string `json:"end_date"`
	InstitutionalHeadcount int    `json:"institutional_headcount"`
	ThirdPartyHeadcount    int    `json:"third_party_headcount"`
}

type SelectedSource struct {
	BudgetLineID int64  `json:"budget_line_id"`
	ActivityID   string `json:"activity_id,omitempty"`
}

type PerDiemDraft struct {
	ID           string `json:"id,omitempty"`
	BudgetLineID int64  `json:"budget_line_id"`
	ActivityID   string `json:"activity_id,omitempty"`
	// ActivityIndex is accepted from older clients that still correlate by
	// array position; EnsureActivityIDs rewrites it into ActivityID.
	ActivityIndex *int            `json:"activity_index,omitempty"`
	ConceptID     int64           `json:"concept_id"`
	Destination   DestinationType `json:"destination"`
	Days          int             `json:"days"`
	Persons       int             `json:"persons"`
}

type ExpenseDraft struct {
	ID           string          `json:"id,omitempty"`
	BudgetLineID int64           `json:"budget_line_id"`
	CategoryID   int64           `json:"category_id"`
	DocumentType DocumentType    `json:"document_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
}

type PayrollDraft struct {
	ID           string          `json:"id,omitempty"`
	BudgetLineID int64           `json:"budget_line_id"`
	FullName     string          `json:"full_name"`
	Institution  string          `json:"institution"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	LiquidAmount decimal.Decimal `json:"liquid_amount"`
}

// FormState is the in-progress wizard state of a request.
type FormState struct {
	Sources    []SelectedSource  `json:"sources"`
	Activities []PlannedActivity `json:"activities"`
	PerDiems   []PerDiemDraft    `json:"per_diems"`
	Expenses   []ExpenseDraft    `json:"expenses"`
	Payroll    []PayrollDraft    `json:"payroll"`
}

// SubmittedRequest is the immutable nested snapshot the backend returns for a
// persisted request.
type SubmittedRequest struct {
	ID          string                `json:"id"`
	Code        string                `json:"code"`
	Status      string                `json:"status"`
	Activities  []PlannedActivity     `json:"activities"`
	BudgetLines []PersistedBudgetLine `json:"budget_lines"`
}

type PersistedBudgetLine struct {
	ReservationID    int64                   `json:"reservation_id"`
	BudgetLineID     int64                   `json:"budget_line_id"`
	PartidaName      string                  `json:"partida_name"`
	Category         PartidaCategory         `json:"category,omitempty"`
	ActivityRefID    string                  `json:"activity_ref_id,omitempty"`
	ReservedAmount   decimal.Decimal         `json:"reserved_amount"`
	AvailableBalance decimal.Decimal         `json:"available_balance"`
	PerDiems         []PersistedPerDiem      `json:"per_diems"`
	Expenses         []PersistedExpense      `json:"expenses"`
	Payroll          []PersistedPayrollEntry `json:"payroll"`
}

type PersistedPerDiem struct {
	ID            string          `json:"id"`
	ActivityRefID string          `json:"activity_ref_id,omitempty"`
	ConceptID     int64           `json:"concept_id"`
	ConceptName   string          `json:"concept_name"`
	Destination   DestinationType `json:"destination"`
	Days          int             `json:"days"`
	Persons       int             `json:"persons"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	LiquidAmount  decimal.Decimal `json:"liquid_amount"`
}

type PersistedExpense struct {
	ID           string          `json:"id"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	DocumentType DocumentType    `json:"document_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	LiquidAmount decimal.Decimal `json:"liquid_amount"`
}

type PersistedPayrollEntry struct {
	ID           string          `json:"id"`
	FullName     string          `json:"full_name"`
	Institution  string          `json:"institution"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	LiquidAmount decimal.Decimal `json:"liquid_amount"`
}

// BreakdownItem is the display projection of one line item.
type BreakdownItem struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Detail       *string          `json:"detail,omitempty"`
	Destination  *DestinationType `json:"destination,omitempty"`
	NetAmount    decimal.Decimal  `json:"net_amount"`
	LiquidAmount decimal.Decimal  `json:"liquid_amount"`
}

// PartidaGroup aggregates every item charged to one reservation.
// TotalLiquido and TotalPresupuestado are always the sums of Items.
type PartidaGroup struct {
	ReservationID       int64           `json:"reservation_id"`
	PartidaName         string          `json:"partida_name"`
	ActivityDescription *string         `json:"activity_description,omitempty"`
	IsPerDiem           bool            `json:"is_per_diem"`
	Items               []BreakdownItem `json:"items"`
	TotalLiquido        decimal.Decimal `json:"total_liquido"`
	TotalPresupuestado  decimal.Decimal `json:"total_presupuestado"`
}

type Totals struct {
	TotalLiquido       decimal.Decimal `json:"total_liquido"`
	TotalPresupuestado decimal.Decimal `json:"total_presupuestado"`
}

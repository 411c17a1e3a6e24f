package breakdown

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	institutionalWithholding = decimal.RequireFromString("0.87")
	thirdPartyWithholding    = decimal.RequireFromString("0.84")

	purchaseReceiptRate        = decimal.RequireFromString("0.08")
	rentalOrServiceReceiptRate = decimal.RequireFromString("0.16")

	iueRate = decimal.RequireFromString("0.05")
	itRate  = decimal.RequireFromString("0.03")
	ivaRate = decimal.RequireFromString("0.13")
)

type PerDiemInput struct {
	Days        int
	Persons     int
	Destination DestinationType
	Concept     *PerDiemConcept
}

type PerDiemAmounts struct {
	UnitRate     decimal.Decimal `json:"unit_rate"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	LiquidAmount decimal.Decimal `json:"liquid_amount"`
}

type ExpenseInput struct {
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	DocumentType DocumentType
	CategoryName string
}

// Taxes is informational only; it is never persisted with the line.
type Taxes struct {
	IUE decimal.Decimal `json:"iue"`
	IT  decimal.Decimal `json:"it"`
	IVA decimal.Decimal `json:"iva"`
}

type ExpenseAmounts struct {
	NetAmount       decimal.Decimal `json:"net_amount"`
	LiquidAmount    decimal.Decimal `json:"liquid_amount"`
	WithholdingRate decimal.Decimal `json:"withholding_rate"`
	Taxes           Taxes           `json:"taxes"`
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// parseRate turns a catalog rate into a decimal. Absent or unparseable rates
// are zero.
func parseRate(v *string) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*v))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func nonNegativeDecimal(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func UnitRate(concept *PerDiemConcept, destination DestinationType) decimal.Decimal {
	if concept == nil {
		return decimal.Zero
	}
	if destination == DestinationInstitutional {
		return parseRate(concept.InstitutionalRate)
	}
	return parseRate(concept.ThirdPartyRate)
}

func withholdingFactor(destination DestinationType) decimal.Decimal {
	if destination == DestinationThirdParty {
		return thirdPartyWithholding
	}
	return institutionalWithholding
}

// DerivePerDiem computes the payable amount from days × persons × rate and
// grosses it up by the withholding factor to get the budgeted amount.
func DerivePerDiem(in PerDiemInput) PerDiemAmounts {
	rate := UnitRate(in.Concept, in.Destination)
	days := decimal.NewFromInt(int64(nonNegative(in.Days)))
	persons := decimal.NewFromInt(int64(nonNegative(in.Persons)))

	liquid := round2(days.Mul(persons).Mul(rate))
	net := round2(liquid.Div(withholdingFactor(in.Destination)))

	return PerDiemAmounts{
		UnitRate:     rate,
		NetAmount:    net,
		LiquidAmount: liquid,
	}
}

// ClampPerDiem applies the planned activity ceilings to the entered values.
// Days are clamped only when the activity has a computable day count; the
// headcount ceiling always applies, so a zero ceiling forces zero persons.
func ClampPerDiem(days, persons int, destination DestinationType, activity *PlannedActivity) (int, int) {
	days = nonNegative(days)
	persons = nonNegative(persons)
	if activity == nil {
		return days, persons
	}

	if maxDays := activity.DayCount(); maxDays > 0 && days > maxDays {
		days = maxDays
	}

	maxPersons := nonNegative(activity.InstitutionalHeadcount)
	if destination == DestinationThirdParty {
		maxPersons = nonNegative(activity.ThirdPartyHeadcount)
	}
	if persons > maxPersons {
		persons = maxPersons
	}
	return days, persons
}

type receiptKind int

const (
	receiptNone receiptKind = iota
	receiptPurchase
	receiptRentalOrService
)

func classifyReceipt(documentType DocumentType, categoryName string) receiptKind {
	if documentType != DocumentReceipt {
		return receiptNone
	}
	name := normalizeName(categoryName)
	switch {
	case name == "COMPRA":
		return receiptPurchase
	case strings.Contains(name, "ALQUILER"), strings.Contains(name, "SERVICIO"):
		return receiptRentalOrService
	default:
		return receiptNone
	}
}

// WithholdingRate is the additional rate a receipt-backed expense is grossed
// up by.
func WithholdingRate(documentType DocumentType, categoryName string) decimal.Decimal {
	switch classifyReceipt(documentType, categoryName) {
	case receiptPurchase:
		return purchaseReceiptRate
	case receiptRentalOrService:
		return rentalOrServiceReceiptRate
	default:
		return decimal.Zero
	}
}

func ExpenseTaxes(net decimal.Decimal, documentType DocumentType, categoryName string) Taxes {
	taxes := Taxes{IUE: decimal.Zero, IT: decimal.Zero, IVA: decimal.Zero}
	switch classifyReceipt(documentType, categoryName) {
	case receiptPurchase:
		taxes.IUE = round2(net.Mul(iueRate))
		taxes.IT = round2(net.Mul(itRate))
	case receiptRentalOrService:
		taxes.IVA = round2(net.Mul(ivaRate))
		taxes.IT = round2(net.Mul(itRate))
	}
	return taxes
}

// DeriveExpense computes the tax-exclusive base and, for receipts, the
// grossed-up amount. Here LiquidAmount is the larger figure, the inverse of
// per-diem lines.
func DeriveExpense(in ExpenseInput) ExpenseAmounts {
	net := round2(nonNegativeDecimal(in.Quantity).Mul(nonNegativeDecimal(in.UnitCost)))
	rate := WithholdingRate(in.DocumentType, in.CategoryName)
	liquid := round2(net.Mul(decimal.NewFromInt(1).Add(rate)))

	return ExpenseAmounts{
		NetAmount:       net,
		LiquidAmount:    liquid,
		WithholdingRate: rate,
		Taxes:           ExpenseTaxes(net, in.DocumentType, in.CategoryName),
	}
}

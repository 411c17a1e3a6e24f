package breakdown

import (
	breakdownerrors "go-solicitudes/internal/breakdown/errors"

	"github.com/shopspring/decimal"
)

// ValidatePayrollEntry is the submission check for a flat payroll entry.
// Breakdowns never call it: a zeroed entry still renders.
func ValidatePayrollEntry(net, liquid decimal.Decimal) error {
	if !net.IsPositive() {
		return breakdownerrors.ErrPayrollNetAmountRequired
	}
	if !liquid.IsPositive() {
		return breakdownerrors.ErrPayrollLiquidAmountRequired
	}
	return nil
}

package breakdownerrors

import (
	"net/http"

	"go-solicitudes/internal/shared/apperror"
)

var (
	ErrPayrollNetAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"payroll net_amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrPayrollLiquidAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"payroll liquid_amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrCatalogUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"catalogs are temporarily unavailable",
		http.StatusServiceUnavailable,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to export breakdown",
		http.StatusInternalServerError,
	)
)

package solicituderrors

import (
	"net/http"

	"go-solicitudes/internal/shared/apperror"
)

var (
	ErrUnknownStatus = apperror.New(
		apperror.CodeInvalidState,
		"unknown solicitud status",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"status transition is not allowed",
		http.StatusConflict,
	)
)

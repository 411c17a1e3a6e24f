package sgperrors

import (
	"net/http"

	"go-solicitudes/internal/shared/apperror"
)

var (
	ErrSolicitudNotFound = apperror.New(
		apperror.CodeNotFound,
		"Solicitud not found",
		http.StatusNotFound,
	)
	ErrBackendUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Backend rejected the caller credentials",
		http.StatusUnauthorized,
	)
	ErrBackendForbidden = apperror.New(
		apperror.CodeForbidden,
		"Backend denied access to this resource",
		http.StatusForbidden,
	)
	ErrBackendUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Backend is temporarily unavailable",
		http.StatusServiceUnavailable,
	)
	ErrInvalidSolicitudID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid solicitud id",
		http.StatusBadRequest,
	)
)

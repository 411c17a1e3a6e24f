package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-solicitudes/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
		assert.Equal(t, "Resource not found", got.Message)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("load: %w", apperror.ErrForbidden)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.Wrap(cause, apperror.CodeServiceUnavailable, "Backend unavailable", http.StatusServiceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Backend unavailable: boom", err.Error())
	assert.Nil(t, apperror.Wrap(nil, "X", "y", 500))
}

type validated struct {
	FullName string `json:"full_name" validate:"required"`
	Days     int    `json:"days" validate:"gte=0"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(validated{Days: 1}))
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "Full Name is required", appErr.Message)
	})

	t.Run("invalid", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(validated{FullName: "x", Days: -1}))
		assert.Equal(t, "Days is invalid", err.Error())
	})

	t.Run("non validation error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("eof"))
		assert.Equal(t, "Invalid input", err.Error())
	})
}

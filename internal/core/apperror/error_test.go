package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoriesCarryStatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", NewValidation("name is required"), CodeValidation, http.StatusBadRequest},
		{"invalid input", NewInvalidInput("bad id"), CodeInvalidInput, http.StatusBadRequest},
		{"not found", NewNotFound("client", 7), CodeNotFound, http.StatusNotFound},
		{"no data", NewNoData("No data available"), CodeNoData, http.StatusNotFound},
		{"concurrent", NewConcurrentModification("invoice", 3), CodeConcurrentModification, http.StatusConflict},
		{"database", NewDatabase(errors.New("boom")), CodeDatabase, http.StatusInternalServerError},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestNotFoundCarriesEntityDetails(t *testing.T) {
	err := NewNotFound("product", 42)
	assert.Equal(t, "product", err.Details["entity"])
	assert.Equal(t, 42, err.Details["id"])
}

func TestAsAppErrorUnwrapsChain(t *testing.T) {
	inner := NewNotFound("client", 1)
	wrapped := fmt.Errorf("get client: %w", inner)

	appErr, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(NewConcurrentModification("client", 1)))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestIsNotFoundCoversNoData(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("client", 1)))
	assert.True(t, IsNotFound(NewNoData("No data available")))
	assert.False(t, IsNotFound(NewValidation("nope")))

	assert.True(t, IsNoData(NewNoData("No data available")))
	assert.False(t, IsNoData(NewNotFound("client", 1)))
}

func TestWithDetailAndCause(t *testing.T) {
	cause := errors.New("row locked")
	err := NewValidation("bad field").
		WithDetail("field", "name").
		WithCause(cause)

	assert.Equal(t, "name", err.Details["field"])
	assert.True(t, errors.Is(err, cause))
}

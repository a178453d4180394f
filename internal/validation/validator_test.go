package validation_test

import (
	"errors"
	"net/http"
	"testing"

	domainerrors "github.com/pageturnapp/pageturn-server/internal/errors"
	"github.com/pageturnapp/pageturn-server/internal/validation"
	"github.com/stretchr/testify/assert"
)

type TestRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Quantity int     `json:"quantity" validate:"min=1,max=100"`
	Price    float64 `json:"unit_price" validate:"gte=0"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	req := TestRequest{
		Name:     "Paul Atreides",
		Email:    "paul@arrakis.example",
		Quantity: 2,
		Price:    15.99,
	}

	err := v.Validate(req)
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       TestRequest
		wantField string
	}{
		{
			name:      "missing required field",
			req:       TestRequest{Name: "", Quantity: 1},
			wantField: "name",
		},
		{
			name:      "invalid email",
			req:       TestRequest{Name: "Paul", Email: "not-an-email", Quantity: 1},
			wantField: "email",
		},
		{
			name:      "quantity below minimum",
			req:       TestRequest{Name: "Paul", Quantity: 0},
			wantField: "quantity",
		},
		{
			name:      "quantity above maximum",
			req:       TestRequest{Name: "Paul", Quantity: 101},
			wantField: "quantity",
		},
		{
			name:      "negative price",
			req:       TestRequest{Name: "Paul", Quantity: 1, Price: -1},
			wantField: "unit_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			assert.Error(t, err)

			var domainErr *domainerrors.Error
			if assert.True(t, errors.As(err, &domainErr)) {
				assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

				fields, ok := domainErr.Details.(map[string]string)
				if assert.True(t, ok, "details should carry field errors") {
					assert.Contains(t, fields, tt.wantField)
				}
			}
		})
	}
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(TestRequest{Name: "", Quantity: 1})
	assert.Error(t, err)

	var domainErr *domainerrors.Error
	if assert.True(t, errors.As(err, &domainErr)) {
		fields := domainErr.Details.(map[string]string)
		// Should use JSON tag name "name", not struct field name "Name"
		assert.Contains(t, fields, "name")
		assert.NotContains(t, fields, "Name")
	}
}

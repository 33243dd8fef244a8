package validator_test

import (
	"bloom/shared/failure"
	"bloom/shared/validator"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingForm struct {
	Name  string `form:"name"  validate:"max=5"`
	Email string `form:"email" validate:"omitempty,email"`
	Code  string `json:"code"  validate:"max=4"`
	Note  string `validate:"max=3"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    bookingForm
		wantMsg string
	}{
		{
			name: "valid",
			data: bookingForm{Name: "Ana", Email: "ana@example.com", Code: "BS1"},
		},
		{
			name:    "uses form key in message",
			data:    bookingForm{Name: "Anastasia", Code: "BS1"},
			wantMsg: "name must be at most 5 characters",
		},
		{
			name:    "invalid email",
			data:    bookingForm{Email: "nope", Code: "BS1"},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "long code uses json key",
			data:    bookingForm{Code: "BS12345"},
			wantMsg: "code must be at most 4 characters",
		},
		{
			name:    "falls back to field name",
			data:    bookingForm{Code: "BS1", Note: "long"},
			wantMsg: "Note must be at most 3 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

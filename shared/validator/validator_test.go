package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"luxe/shared/failure"
	"luxe/shared/validator"
)

type stayRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,staydate"`
	CheckOut string `json:"check_out" validate:"required,staydate"`
}

func TestValidateStruct_StayDate(t *testing.T) {
	tests := []struct {
		name    string
		req     stayRequest
		wantErr bool
	}{
		{
			name: "valid dates",
			req:  stayRequest{CheckIn: "2024-01-10", CheckOut: "2024-01-12"},
		},
		{
			name:    "wrong format",
			req:     stayRequest{CheckIn: "10-01-2024", CheckOut: "2024-01-12"},
			wantErr: true,
		},
		{
			name:    "not a date",
			req:     stayRequest{CheckIn: "2024-01-10", CheckOut: "soon"},
			wantErr: true,
		},
		{
			name:    "missing",
			req:     stayRequest{CheckIn: "2024-01-10"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	body := strings.NewReader(`{"check_in":"2024-01-10","check_out":"2024-01-12"}`)

	var req stayRequest
	assert.NoError(t, validator.Validate(body, &req))
	assert.Equal(t, "2024-01-10", req.CheckIn)

	var bad stayRequest
	err := validator.Validate(strings.NewReader("{"), &bad)
	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

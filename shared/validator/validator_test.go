package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hostal/shared/validator"
)

type sampleRequest struct {
	Name        string `json:"name"          validate:"required,max=50"`
	Email       string `json:"email"         validate:"omitempty,email"`
	CheckInDate string `json:"check_in_date" validate:"required,dateonly"`
	CheckInTime string `json:"check_in_time" validate:"omitempty,clock"`
	Status      string `json:"status"        validate:"omitempty,oneof=confirmed cancelled"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid request",
			body: `{"name":"Hotel Plaza","email":"front@plaza.cl","check_in_date":"2025-05-01","check_in_time":"15:00","status":"confirmed"}`,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"email":"front@plaza.cl","check_in_date":"2025-05-01"}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"name":"Hotel Plaza","email":"not-an-email","check_in_date":"2025-05-01"}`,
			wantErr: true,
		},
		{
			name:    "invalid date form",
			body:    `{"name":"Hotel Plaza","check_in_date":"01-05-2025"}`,
			wantErr: true,
		},
		{
			name:    "invalid clock form",
			body:    `{"name":"Hotel Plaza","check_in_date":"2025-05-01","check_in_time":"3pm"}`,
			wantErr: true,
		},
		{
			name:    "status outside enum",
			body:    `{"name":"Hotel Plaza","check_in_date":"2025-05-01","status":"paused"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest{}

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-12-31", "dateonly"))
	assert.Error(t, validator.ValidateVar("31/12/2025", "dateonly"))
	assert.NoError(t, validator.ValidateVar("11:00", "clock"))
	assert.Error(t, validator.ValidateVar("25:99", "clock"))
}

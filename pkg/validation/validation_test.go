package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "accounts/pkg/domain-errors"
)

type lookup struct {
	CustomerID   int64  `json:"customerId" validate:"required_without=MobileNumber,omitempty,gt=0"`
	MobileNumber string `json:"mobileNumber" validate:"required_without=CustomerID,omitempty,mobile"`
	Email        string `json:"email" validate:"omitempty,email"`
	CreateDt     string `json:"createDt" validate:"omitempty,datetime=2006-01-02"`
	Name         string `json:"name" validate:"omitempty,notblank,max=100"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     lookup
		wantMsg string
	}{
		{name: "customer id only", req: lookup{CustomerID: 1}},
		{name: "mobile only", req: lookup{MobileNumber: "9876543210"}},
		{name: "international mobile", req: lookup{MobileNumber: "+447700900123"}},
		{name: "neither identifier", req: lookup{}, wantMsg: "customerId or mobileNumber is required"},
		{name: "negative id", req: lookup{CustomerID: -4}, wantMsg: "customerId must be greater than 0"},
		{name: "short mobile", req: lookup{MobileNumber: "12"}, wantMsg: "mobileNumber must be 7 to 15 digits"},
		{name: "bad email", req: lookup{CustomerID: 1, Email: "nope"}, wantMsg: "email must be a valid email"},
		{name: "bad date", req: lookup{CustomerID: 1, CreateDt: "01/02/2024"}, wantMsg: "createDt must be a date in 2006-01-02 format"},
		{name: "blank name", req: lookup{CustomerID: 1, Name: "   "}, wantMsg: "name must not be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestErrorMessageForNonValidatorError(t *testing.T) {
	assert.Equal(t, "invalid request body", ErrorMessage(assert.AnError))
}

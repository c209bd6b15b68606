package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"referral-auth/internal/domain"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"valid number", "+79991234567", true},
		{"another valid number", "+70000000000", true},
		{"missing plus", "79991234567", false},
		{"eight instead of seven", "89991234567", false},
		{"too few digits", "+7999123456", false},
		{"too many digits", "+799912345678", false},
		{"trailing garbage", "+79991234567x", false},
		{"leading garbage", "x+79991234567", false},
		{"letters instead of digits", "+7abcdefghij", false},
		{"empty string", "", false},
		{"spaces inside", "+7 999 123 45 67", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidPhone)
			}
		})
	}
}

func TestValidateSMSCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"four digits", "4821", true},
		{"leading zero", "0421", true},
		{"three digits", "482", false},
		{"five digits", "48211", false},
		{"letters", "abcd", false},
		{"mixed", "48a1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSMSCode(tt.code)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidCode)
			}
		})
	}
}

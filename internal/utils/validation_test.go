package utils

import (
	"testing"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"valid", "+79991234567", true},
		{"without plus", "79991234567", false},
		{"starts with 8", "89991234567", false},
		{"too short", "+7999123456", false},
		{"too long", "+799912345678", false},
		{"with spaces", "+7 999 123 45 67", false},
		{"letters", "+7999123456a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhoneNumber(tt.phone))
		})
	}
}

func TestIsValidCardNumber(t *testing.T) {
	tests := []struct {
		name string
		card string
		want bool
	}{
		{"valid", "1234567890123456", true},
		{"valid with spaces", "1234 5678 9012 3456", true},
		{"valid with dashes", "1234-5678-9012-3456", true},
		{"15 digits", "123456789012345", false},
		{"17 digits", "12345678901234567", false},
		{"letters", "abcd567890123456", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCardNumber(tt.card))
		})
	}
}

func TestValidateWithdrawalDetails(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		details models.WithdrawalDetails
		wantErr error
	}{
		{
			name:    "card ok",
			method:  models.WithdrawalMethodCard,
			details: models.WithdrawalDetails{CardNumber: "1234 5678 9012 3456", CardholderName: "IVAN IVANOV"},
		},
		{
			name:    "card short number",
			method:  models.WithdrawalMethodCard,
			details: models.WithdrawalDetails{CardNumber: "123456789012345", CardholderName: "IVAN IVANOV"},
			wantErr: apperrors.ErrInvalidWithdrawalDetails,
		},
		{
			name:    "card blank holder",
			method:  models.WithdrawalMethodCard,
			details: models.WithdrawalDetails{CardNumber: "1234567890123456", CardholderName: "   "},
			wantErr: apperrors.ErrInvalidWithdrawalDetails,
		},
		{
			name:    "sbp ok",
			method:  models.WithdrawalMethodSBP,
			details: models.WithdrawalDetails{BankName: "Tinkoff", PhoneNumber: "+79991234567"},
		},
		{
			name:    "sbp bad phone",
			method:  models.WithdrawalMethodSBP,
			details: models.WithdrawalDetails{BankName: "Tinkoff", PhoneNumber: "89991234567"},
			wantErr: apperrors.ErrInvalidWithdrawalDetails,
		},
		{
			name:    "sbp blank bank",
			method:  models.WithdrawalMethodSBP,
			details: models.WithdrawalDetails{BankName: "", PhoneNumber: "+79991234567"},
			wantErr: apperrors.ErrInvalidWithdrawalDetails,
		},
		{
			name:    "unknown method",
			method:  "paypal",
			details: models.WithdrawalDetails{},
			wantErr: apperrors.ErrInvalidWithdrawalMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateWithdrawalDetails(tt.method, tt.details)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			if tt.method == models.WithdrawalMethodCard {
				assert.Equal(t, "1234567890123456", got.CardNumber)
			}
		})
	}
}

func TestParseReferralToken(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		wantID int64
		wantOK bool
	}{
		{"valid", "ref_12345", 12345, true},
		{"no prefix", "12345", 0, false},
		{"wrong prefix", "rf_12345", 0, false},
		{"not a number", "ref_abc", 0, false},
		{"negative id", "ref_-5", 0, false},
		{"zero id", "ref_0", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseReferralToken(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestReferralCommission(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		rate  float64
		want  int64
	}{
		{"half of 150", 150, 0.5, 75},
		{"half of 50", 50, 0.5, 25},
		{"rounds half up", 25, 0.5, 13},
		{"zero rate", 100, 0, 0},
		{"tenth of 55", 55, 0.1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferralCommission(tt.price, tt.rate))
		})
	}
}

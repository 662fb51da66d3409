package utils

import (
	"regexp"
	"strings"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

var (
	phoneRegexp = regexp.MustCompile(`^\+7\d{10}$`)
	cardRegexp  = regexp.MustCompile(`^\d{16}$`)
)

// IsValidPhoneNumber reports whether phone is in the +7XXXXXXXXXX format,
// no separators allowed.
func IsValidPhoneNumber(phone string) bool {
	return phoneRegexp.MatchString(phone)
}

// NormalizeCardNumber strips spaces and dashes from a card number.
func NormalizeCardNumber(card string) string {
	card = strings.ReplaceAll(card, " ", "")
	return strings.ReplaceAll(card, "-", "")
}

func IsValidCardNumber(card string) bool {
	return cardRegexp.MatchString(NormalizeCardNumber(card))
}

// ValidateWithdrawalDetails checks method-specific requisites and returns
// them normalized. Card numbers are stored without separators.
func ValidateWithdrawalDetails(method string, details models.WithdrawalDetails) (models.WithdrawalDetails, error) {
	switch method {
	case models.WithdrawalMethodCard:
		if !IsValidCardNumber(details.CardNumber) {
			return details, apperrors.ErrInvalidWithdrawalDetails
		}
		if strings.TrimSpace(details.CardholderName) == "" {
			return details, apperrors.ErrInvalidWithdrawalDetails
		}
		details.CardNumber = NormalizeCardNumber(details.CardNumber)
		details.BankName = ""
		details.PhoneNumber = ""
	case models.WithdrawalMethodSBP:
		if strings.TrimSpace(details.BankName) == "" {
			return details, apperrors.ErrInvalidWithdrawalDetails
		}
		if !IsValidPhoneNumber(details.PhoneNumber) {
			return details, apperrors.ErrInvalidWithdrawalDetails
		}
		details.CardNumber = ""
		details.CardholderName = ""
	default:
		return details, apperrors.ErrInvalidWithdrawalMethod
	}
	return details, nil
}

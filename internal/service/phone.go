package service

import (
	"regexp"

	"referral-auth/internal/domain"
)

// Номер: +7 и ровно 10 цифр, якоря с обеих сторон - лишние символы
// в начале и в конце не допускаются
var (
	phoneRegexp   = regexp.MustCompile(`^\+7\d{10}$`)
	smsCodeRegexp = regexp.MustCompile(`^\d{4}$`)
)

// ValidatePhone проверяет формат номера телефона
func ValidatePhone(phone string) error {
	if !phoneRegexp.MatchString(phone) {
		return domain.ErrInvalidPhone
	}
	return nil
}

// ValidateSMSCode проверяет, что код состоит ровно из 4 цифр
func ValidateSMSCode(code string) error {
	if !smsCodeRegexp.MatchString(code) {
		return domain.ErrInvalidCode
	}
	return nil
}

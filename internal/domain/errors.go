package domain

import "errors"

var (
	// Validation errors
	ErrInvalidPhone = errors.New("phone number must start with +7 and contain 11 digits")
	ErrInvalidCode  = errors.New("sms code must consist of 4 digits")

	// Auth errors
	ErrOTPNotFound       = errors.New("sms code not found for this phone number")
	ErrOTPExpired        = errors.New("sms code has expired")
	ErrSMSDeliveryFailed = errors.New("failed to deliver sms code")
	ErrUnauthorized      = errors.New("authorization required")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Referral errors
	ErrReferralAlreadyActivated = errors.New("referral code has already been activated")
	ErrReferralCodeNotFound     = errors.New("referral code does not exist")
	ErrSelfReferral             = errors.New("you cannot use your own referral code")
	ErrReciprocalReferral       = errors.New("you cannot use the code of a user you invited")
)

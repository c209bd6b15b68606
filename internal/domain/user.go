package domain

import "time"

// User - пользователь, идентифицируется номером телефона
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PhoneNumber string `gorm:"size:12;uniqueIndex;not null" json:"phone_number"`
	FirstName   string `gorm:"size:150" json:"first_name"`
	LastName    string `gorm:"size:150" json:"last_name"`
	Email       string `gorm:"size:254" json:"email"`

	// Собственный реферальный код назначается один раз при создании
	OwnReferralCode string `gorm:"size:6;uniqueIndex;not null" json:"my_referral_code"`
	// Реферальный код пригласителя: устанавливается один раз и больше не меняется
	InviterReferralCode *string `gorm:"size:6;index" json:"inviter_referral_code"`
	ReferralPoints      uint    `gorm:"not null;default:0" json:"referral_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileResponse - профиль пользователя со списком рефералов
type ProfileResponse struct {
	FirstName           string   `json:"first_name"`
	LastName            string   `json:"last_name"`
	Email               string   `json:"email"`
	PhoneNumber         string   `json:"phone_number"`
	MyReferralCode      string   `json:"my_referral_code"`
	Referrals           []string `json:"referrals"` // номера телефонов приглашенных
	ReferralPoints      uint     `json:"referral_points"`
	InviterReferralCode *string  `json:"inviter_referral_code"`
}

// UpdateProfileRequest - запрос на обновление профиля; nil-поля не изменяются
type UpdateProfileRequest struct {
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	Email               *string `json:"email"`
	InviterReferralCode *string `json:"inviter_referral_code"`
}

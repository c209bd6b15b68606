package domain

// SendSMSRequest - запрос на отправку смс кода
type SendSMSRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// SendSMSResponse - ответ на отправку смс кода
type SendSMSResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerifySMSRequest - запрос на проверку смс кода
type VerifySMSRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	SMSCode     string `json:"sms_code" validate:"required,len=4"`
}

// VerifySMSResponse - ответ с bearer токеном после успешной проверки
type VerifySMSResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	IsNewUser   bool   `json:"is_new_user"`
}

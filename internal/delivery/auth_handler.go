package delivery

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"referral-auth/internal/domain"
	"referral-auth/internal/service"
)

// AuthHandler обрабатывает авторизацию по номеру телефона с OTP
type AuthHandler struct {
	auth *service.AuthService
	log  *zap.SugaredLogger
}

func NewAuthHandler(auth *service.AuthService, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// SendSMS отправляет смс код на номер телефона (шаг 1)
// POST /api/auth/send_sms
func (h *AuthHandler) SendSMS(c *fiber.Ctx) error {
	var req domain.SendSMSRequest

	if err := c.BodyParser(&req); err != nil {
		h.log.Errorf("Failed to parse SendSMS request: %v", err)
		return respondBadRequest(c, "Invalid request body")
	}

	if err := h.auth.RequestCode(c.Context(), req.PhoneNumber); err != nil {
		return respondDomainError(c, err)
	}

	return respondOK(c, domain.SendSMSResponse{
		Success: true,
		Message: "SMS code sent successfully",
	})
}

// VerifySMS проверяет смс код и возвращает bearer токен (шаг 2)
// POST /api/auth/verify_sms
func (h *AuthHandler) VerifySMS(c *fiber.Ctx) error {
	var req domain.VerifySMSRequest

	if err := c.BodyParser(&req); err != nil {
		h.log.Errorf("Failed to parse VerifySMS request: %v", err)
		return respondBadRequest(c, "Invalid request body")
	}

	result, err := h.auth.VerifyCode(c.Context(), req.PhoneNumber, req.SMSCode)
	if err != nil {
		h.log.Infof("OTP verification failed for %s: %v", req.PhoneNumber, err)
		return respondDomainError(c, err)
	}

	return respondOK(c, domain.VerifySMSResponse{
		Success:     true,
		Message:     "Authorization successful",
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		IsNewUser:   result.IsNewUser,
	})
}

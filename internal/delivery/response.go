package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"referral-auth/internal/domain"
)

// ErrorResponse - стандартный формат ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// respondBadRequest - ошибка валидации (400)
func respondBadRequest(c *fiber.Ctx, message string) error {
	return respondWithError(c, fiber.StatusBadRequest, message)
}

// respondUnauthorized - ошибка авторизации (401)
func respondUnauthorized(c *fiber.Ctx, message string) error {
	return respondWithError(c, fiber.StatusUnauthorized, message)
}

// respondInternalError - внутренняя ошибка (500)
func respondInternalError(c *fiber.Ctx, message string) error {
	return respondWithError(c, fiber.StatusInternalServerError, message)
}

// respondOK - успешный ответ (200)
func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// respondDomainError транслирует типизированные ошибки ядра в HTTP статусы.
// Ошибки валидации, состояния и бизнес-правил - вина клиента (400),
// все неопознанное - 500.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return respondUnauthorized(c, err.Error())
	case errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidCode),
		errors.Is(err, domain.ErrOTPNotFound),
		errors.Is(err, domain.ErrOTPExpired),
		errors.Is(err, domain.ErrSMSDeliveryFailed),
		errors.Is(err, domain.ErrReferralAlreadyActivated),
		errors.Is(err, domain.ErrReferralCodeNotFound),
		errors.Is(err, domain.ErrSelfReferral),
		errors.Is(err, domain.ErrReciprocalReferral):
		return respondBadRequest(c, err.Error())
	default:
		return respondInternalError(c, "internal server error")
	}
}

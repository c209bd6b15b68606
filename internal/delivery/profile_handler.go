package delivery

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"referral-auth/internal/domain"
	"referral-auth/internal/service"
)

// ProfileHandler - просмотр и обновление собственного профиля
type ProfileHandler struct {
	profiles *service.ProfileService
	log      *zap.SugaredLogger
}

func NewProfileHandler(profiles *service.ProfileService, log *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

// GetProfile возвращает профиль авторизованного пользователя
// GET /api/profile
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondUnauthorized(c, domain.ErrUnauthorized.Error())
	}

	profile, err := h.profiles.GetProfile(c.Context(), userID)
	if err != nil {
		h.log.Errorf("Failed to load profile for user %d: %v", userID, err)
		return respondDomainError(c, err)
	}

	return respondOK(c, profile)
}

// UpdateProfile обновляет профиль авторизованного пользователя,
// включая активацию реферального кода пригласителя
// PATCH /api/profile/update
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondUnauthorized(c, domain.ErrUnauthorized.Error())
	}

	var req domain.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Errorf("Failed to parse UpdateProfile request: %v", err)
		return respondBadRequest(c, "Invalid request body")
	}

	profile, err := h.profiles.UpdateProfile(c.Context(), userID, &req)
	if err != nil {
		return respondDomainError(c, err)
	}

	return respondOK(c, profile)
}

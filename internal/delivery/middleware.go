package delivery

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"referral-auth/internal/domain"
	"referral-auth/internal/service"
)

const userIDKey = "userID"

// AuthRequired проверяет bearer токен и кладет id пользователя в Locals
func AuthRequired(tokens *service.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return respondUnauthorized(c, domain.ErrUnauthorized.Error())
		}

		userID, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return respondUnauthorized(c, domain.ErrUnauthorized.Error())
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(userIDKey).(uint)
	return userID, ok
}

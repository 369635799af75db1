package middleware

import (
	"codeclimb/backend/config"
	"codeclimb/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// AuthMiddleware validates the Authorization token and stores the caller's
// user id in the request locals.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user's id placed by AuthMiddleware.
func UserID(c *fiber.Ctx) uuid.UUID {
	userID, _ := c.Locals(userIDKey).(uuid.UUID)
	return userID
}

package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lojapratica/pix-backend/app/queries"
)

type UserController struct {
	Users UserStore
	Log   *zap.Logger
}

// Perfil returns the authenticated user's profile. The route sits behind
// JWTProtected, which stores the user id in the request locals.
func (uc *UserController) Perfil(c *fiber.Ctx) error {
	idStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id in token"})
	}

	user, err := uc.Users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		uc.Log.Error("profile lookup failed", zap.Error(err), zap.String("user_id", idStr))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}

	return c.JSON(user)
}

package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/helenmarch/vita/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(input.CurrentPassword))) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid current password")
	}

	newPassword := strings.TrimSpace(input.NewPassword)
	if err := services.ValidatePasswordStrength(newPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	}
	if confirm := strings.TrimSpace(input.ConfirmPassword); confirm != "" && confirm != newPassword {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	if err := handler.repos.Users.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// RegenerateRecoveryCode replaces the stored recovery hash and returns the
// new code exactly once.
func (handler *Handler) RegenerateRecoveryCode(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	code, hash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}
	if err := handler.repos.Users.UpdateRecoveryCodeHash(user.ID, hash); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store recovery code")
	}

	return c.JSON(fiber.Map{"recovery_code": code})
}

// DeleteAccount removes the user and, in the same transaction, every
// customer and health record the account owns.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid password")
	}

	password := strings.TrimSpace(input.Password)
	if password == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid password")
	}

	if err := handler.repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	return redirectOrJSON(c, "/login")
}

package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := services.ValidatePasswordStrength(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	}
	if credentials.ConfirmPassword != "" && credentials.ConfirmPassword != credentials.Password {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}

	exists, err := handler.authService.RegistrationEmailExists(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	recoveryCode, recoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user := models.User{
		Email:            credentials.Email,
		PasswordHash:     string(passwordHash),
		DisplayName:      credentials.DisplayName,
		RecoveryCodeHash: recoveryHash,
		CreatedAt:        time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"recovery_code": recoveryCode})
	}
	return handler.render(c, "recovery_code", fiber.Map{
		"Title":        "Your recovery code",
		"CSRFToken":    csrfToken(c),
		"RecoveryCode": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return redirectOrJSON(c, "/login")
}

func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	code := normalizeRecoveryCode(input.RecoveryCode)
	if err := services.ValidateRecoveryCodeFormat(code); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.recoveryLimiter.tooManyRecent(limiterKey, now, 5, 15*time.Minute) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	user, err := handler.authService.FindUserByRecoveryCode(code)
	if err != nil {
		if errors.Is(err, services.ErrRecoveryCodeNotFound) {
			handler.recoveryLimiter.addFailure(limiterKey, now, 15*time.Minute)
			return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to verify recovery code")
	}
	handler.recoveryLimiter.reset(limiterKey)

	token, err := handler.buildPasswordResetToken(user, 30*time.Minute)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"reset_token": token})
	}
	return c.Redirect("/reset-password?token="+token, fiber.StatusSeeOther)
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	claims, err := handler.parsePasswordResetToken(input.Token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}
	if !passwordStateMatches(claims.PasswordState, user.PasswordHash) {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	if err := services.ValidatePasswordStrength(input.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	}
	if input.ConfirmPassword != "" && input.ConfirmPassword != input.Password {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	if err := handler.repos.Users.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	return redirectOrJSON(c, "/login")
}

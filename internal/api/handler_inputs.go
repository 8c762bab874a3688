package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
)

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	DisplayName     string `json:"display_name" form:"display_name"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

type forgotPasswordInput struct {
	RecoveryCode string `json:"recovery_code" form:"recovery_code"`
}

type resetPasswordInput struct {
	Token           string `json:"token" form:"token"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type deleteAccountInput struct {
	Password string `json:"password" form:"password"`
}

type customerPayload struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	DateOfBirth string   `json:"date_of_birth"`
	Gender      string   `json:"gender"`
	HeightCm    *float64 `json:"height_cm"`
	WeightKg    *float64 `json:"weight_kg"`
}

// recordPayload mirrors the save form. Pointer fields distinguish "absent"
// from a real value: absent fields never reach the store, so a stored metric
// cannot be cleared by leaving its input empty (see services.RecordInput).
type recordPayload struct {
	FastingSugar      *float64 `json:"fs"`
	PostprandialSugar *float64 `json:"ppbs"`
	TotalCholesterol  *float64 `json:"total_cholesterol"`
	Triglycerides     *float64 `json:"triglycerides"`
	HDL               *float64 `json:"hdl"`
	LDL               *float64 `json:"ldl"`
	HbA1c             *float64 `json:"hba1c"`
	PSA               *float64 `json:"psa"`
	Creatinine        *float64 `json:"creatinine"`
	Microalbumin      *float64 `json:"microalbumin"`
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
}

func (payload recordPayload) toRecordInput() services.RecordInput {
	values := make(map[models.MetricKey]float64)
	assign := func(key models.MetricKey, value *float64) {
		if value != nil {
			values[key] = *value
		}
	}
	assign(models.MetricFastingSugar, payload.FastingSugar)
	assign(models.MetricPostprandialSugar, payload.PostprandialSugar)
	assign(models.MetricTotalCholesterol, payload.TotalCholesterol)
	assign(models.MetricTriglycerides, payload.Triglycerides)
	assign(models.MetricHDL, payload.HDL)
	assign(models.MetricLDL, payload.LDL)
	assign(models.MetricHbA1c, payload.HbA1c)
	assign(models.MetricPSA, payload.PSA)
	assign(models.MetricCreatinine, payload.Creatinine)
	assign(models.MetricMicroalbumin, payload.Microalbumin)

	return services.RecordInput{
		Values:   values,
		HeightCm: payload.Height,
		WeightKg: payload.Weight,
	}
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	email, password, err := services.NormalizeCredentialsInput(credentials.Email, credentials.Password)
	if err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = email
	credentials.Password = password
	credentials.ConfirmPassword = strings.TrimSpace(credentials.ConfirmPassword)
	credentials.DisplayName = strings.TrimSpace(credentials.DisplayName)

	return credentials, nil
}

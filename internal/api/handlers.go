package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/helenmarch/vita/internal/db"
	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	repos           *db.Repositories
	authService     *services.AuthService
	secretKey       []byte
	location        *time.Location
	cookieSecure    bool
	templates       map[string]*template.Template
	recoveryLimiter *attemptLimiter
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatValue": func(value *float64) string {
			if value == nil {
				return "—"
			}
			return fmt.Sprintf("%g", *value)
		},
		"inputValue": func(value *float64) string {
			if value == nil {
				return ""
			}
			return fmt.Sprintf("%g", *value)
		},
		"metricLabel": func(key models.MetricKey) string {
			return services.MetricLabel(key)
		},
		"metricUnit": func(key models.MetricKey) string {
			return services.MetricUnit(key)
		},
		"statusClass": func(status models.MetricStatus) string {
			return statusCSSClass(status)
		},
		"statusLabel": func(status models.MetricStatus) string {
			return statusDisplayLabel(status)
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"register",
		"recovery_code",
		"forgot_password",
		"reset_password",
		"dashboard",
		"report",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	repositories := db.NewRepositories(database)

	return &Handler{
		db:              database,
		repos:           repositories,
		authService:     services.NewAuthService(repositories.Users),
		secretKey:       []byte(secret),
		location:        location,
		cookieSecure:    cookieSecure,
		templates:       templates,
		recoveryLimiter: newAttemptLimiter(),
	}, nil
}

func (handler *Handler) render(c *fiber.Ctx, page string, data fiber.Map) error {
	parsed, ok := handler.templates[page]
	if !ok {
		return fmt.Errorf("unknown template %s", page)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return parsed.ExecuteTemplate(c.Response().BodyWriter(), "base", data)
}

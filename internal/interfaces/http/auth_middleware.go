package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/pkg/jwt"
)

// Clés Locals pour EmployeID et Email dans Fiber.
const (
	LocalEmployeID = "employe_id"
	LocalEmail     = "email"
)

// AuthMiddleware valide le Bearer Token JWT et place EmployeID et Email dans c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "en-tête Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vide"})
		}
		employeID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalide ou expiré"})
		}
		c.Locals(LocalEmployeID, employeID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetEmployeID renvoie l'EmployeID du contexte (après le middleware d'auth).
func GetEmployeID(c *fiber.Ctx) string {
	v := c.Locals(LocalEmployeID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail renvoie l'Email du contexte (après le middleware d'auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

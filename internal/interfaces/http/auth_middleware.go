package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/dto"
	"github.com/gfarias-dev/farmacia-estoque-api/pkg/jwt"
)

// Locals keys para os dados do ator autenticado.
const (
	LocalUserID  = "user_id"
	LocalUnidade = "unidade"
	LocalPapel   = "papel"
)

// AuthMiddleware valida o Bearer Token JWT e carrega UserID, unidade e papel
// em c.Locals. Toda operação de escrita exige ator autenticado: sem token
// válido a mutação nem começa.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, unidade, papel, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUnidade, unidade)
		c.Locals(LocalPapel, papel)
		return c.Next()
	}
}

// RequireRole autoriza apenas os papéis informados (depois do AuthMiddleware).
func RequireRole(papeis ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		papel := GetPapel(c)
		if papel == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem papel"})
		}
		for _, p := range papeis {
			if papel == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado para o papel " + papel})
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUnidade devolve a unidade de saúde do contexto.
func GetUnidade(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUnidade).(string)
	return s
}

// GetPapel devolve o papel do contexto.
func GetPapel(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalPapel).(string)
	return s
}

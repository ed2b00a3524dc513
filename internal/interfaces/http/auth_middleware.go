package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/pkg/jwt"
)

// Locals keys para la identidad en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
)

// Identidad de demostración mientras no exista el servicio de usuarios.
const (
	demoUserID   = "demo-user"
	demoUserName = "Demo User"
)

// CurrentUser resuelve la identidad del request. Si llega un Bearer JWT
// válido usa sus claims; si no, cae al usuario de demostración. Es el puente
// de autenticación: cuando exista el servicio de usuarios, basta con quitar
// el fallback.
func CurrentUser(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, role := demoUserID, demoUserName, entity.RoleUser

		authHeader := c.Get("Authorization")
		if authHeader != "" && jwtSecret != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if id, name, r, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1])); err == nil {
					userID, userName, role = id, name, r
				}
			}
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, userName)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserName devuelve el UserName del contexto (después del middleware).
func GetUserName(c *fiber.Ctx) string {
	v := c.Locals(LocalUserName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

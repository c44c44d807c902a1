package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/grinder-parts-api/internal/application/dto"
	"github.com/jhoicas/grinder-parts-api/internal/domain"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// sessionState es el contrato mínimo que necesitan los guards.
// Lo implementa *auth.SessionStore.
type sessionState interface {
	IsAuthenticated() bool
	CurrentUser() *entity.User
}

// RequireSession deja pasar solo si hay una sesión activa y carga UserID y Role en c.Locals.
// No valida el token: basta con el flag de autenticación del store de sesión.
//
// Comportamiento:
//   - 401 Unauthorized → no hay sesión (UNAUTHENTICATED).
func RequireSession(s sessionState) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: domain.ErrUnauthenticated.Error(),
			})
		}
		if u := s.CurrentUser(); u != nil {
			c.Locals(LocalUserID, u.ID)
			c.Locals(LocalRole, u.Role)
		}
		return c.Next()
	}
}

// RequireGuest deja pasar solo si NO hay sesión activa (login y registro).
//
// Comportamiento:
//   - 409 Conflict → ya existe una sesión (ALREADY_AUTHENTICATED).
func RequireGuest(s sessionState) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.IsAuthenticated() {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "ALREADY_AUTHENTICATED",
				Message: domain.ErrAlreadyAuthenticated.Error(),
			})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después de RequireSession).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después de RequireSession).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

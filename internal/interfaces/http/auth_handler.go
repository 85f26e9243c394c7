package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/session"
)

// AuthHandler maneja el login y logout de la consola.
type AuthHandler struct {
	session *session.Manager
}

// NewAuthHandler construye el handler inyectando el gestor de sesión.
func NewAuthHandler(s *session.Manager) *AuthHandler {
	return &AuthHandler{session: s}
}

// Login godoc
// @Summary      Iniciar sesión en la consola
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.BackendUser
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /console/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "VALIDATION", Message: "email y password son requeridos"})
	}
	user, err := h.session.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /console/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// La sesión local muere aunque el backend falle; no hay error que devolver.
	_ = h.session.Logout(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario de la sesión vigente
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.BackendUser
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /console/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := h.session.CurrentUser()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{ErrorCode: "NO_SESSION", Message: "no hay sesión vigente"})
	}
	return c.JSON(user)
}

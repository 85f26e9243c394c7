package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/infield-hq/infield-console/internal/application/controller"
	"github.com/infield-hq/infield-console/internal/application/dto"
)

// UsersHandler maneja las peticiones HTTP de la pantalla de usuarios.
type UsersHandler struct {
	ctrl *controller.UsersController
}

// NewUsersHandler construye el handler inyectando el controlador.
func NewUsersHandler(ctrl *controller.UsersController) *UsersHandler {
	return &UsersHandler{ctrl: ctrl}
}

// List godoc
// @Summary      Listar usuarios de un proyecto
// @Tags         users
// @Produce      json
// @Param        accountCode  query  string  false  "Código de la cuenta"
// @Param        projectCode  query  string  false  "Código del proyecto"
// @Param        q            query  string  false  "Texto de búsqueda"
// @Param        status       query  string  false  "All | Active | Inactive | Onboarding"  default(All)
// @Param        page         query  int     false  "Página"          default(1)
// @Param        pageSize     query  int     false  "Tamaño de página" default(10)
// @Success      200  {object}  entity.Paginated[entity.User]
// @Router       /console/users [get]
func (h *UsersHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := h.ctrl.Apply(c.Context(), c.Query("accountCode"), c.Query("projectCode"), q); err != nil {
		return writeError(c, err)
	}
	_, _, page := h.ctrl.Snapshot()
	return c.JSON(page)
}

// Export godoc
// @Summary      Exportar a CSV los usuarios visibles
// @Tags         users
// @Produce      text/csv
// @Param        accountCode  query  string  false  "Código de la cuenta"
// @Param        projectCode  query  string  false  "Código del proyecto"
// @Success      200  {string}  string  "CSV"
// @Router       /console/users/export [get]
func (h *UsersHandler) Export(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := h.ctrl.Apply(c.Context(), c.Query("accountCode"), c.Query("projectCode"), q); err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	filename, err := h.ctrl.ExportCSV(&buf, time.Now().UTC())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

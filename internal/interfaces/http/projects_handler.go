package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/infield-hq/infield-console/internal/application/controller"
	"github.com/infield-hq/infield-console/internal/application/dto"
)

// ProjectsHandler maneja las peticiones HTTP de la pantalla de proyectos.
// Los listados viven bajo la cuenta: /console/accounts/{code}/projects.
type ProjectsHandler struct {
	ctrl *controller.ProjectsController
}

// NewProjectsHandler construye el handler inyectando el controlador.
func NewProjectsHandler(ctrl *controller.ProjectsController) *ProjectsHandler {
	return &ProjectsHandler{ctrl: ctrl}
}

// List godoc
// @Summary      Listar proyectos de una cuenta
// @Tags         projects
// @Produce      json
// @Param        code      path   string  true   "Código de la cuenta"
// @Param        q         query  string  false  "Texto de búsqueda"
// @Param        status    query  string  false  "All | Active | Inactive"  default(All)
// @Param        page      query  int     false  "Página"                   default(1)
// @Param        pageSize  query  int     false  "Tamaño de página"         default(10)
// @Success      200  {object}  entity.Paginated[entity.Project]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /console/accounts/{code}/projects [get]
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := h.ctrl.Apply(c.Context(), c.Params("code"), q); err != nil {
		return writeError(c, err)
	}
	_, _, page := h.ctrl.Snapshot()
	return c.JSON(page)
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "Datos del proyecto (accountId opaco)"
// @Success      201   {object}  entity.Project
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /console/projects [post]
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prj, err := h.ctrl.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(prj)
}

// Update godoc
// @Summary      Actualizar proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proyecto"
// @Param        body  body  dto.UpdateProjectRequest  true  "Cambios"
// @Success      200   {object}  entity.Project
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /console/projects/{id} [put]
func (h *ProjectsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prj, err := h.ctrl.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(prj)
}

// Delete godoc
// @Summary      Eliminar proyecto
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /console/projects/{id} [delete]
func (h *ProjectsHandler) Delete(c *fiber.Ctx) error {
	if err := h.ctrl.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar a CSV los proyectos visibles de la cuenta
// @Tags         projects
// @Produce      text/csv
// @Param        code  path  string  true  "Código de la cuenta"
// @Success      200  {string}  string  "CSV"
// @Router       /console/accounts/{code}/projects/export [get]
func (h *ProjectsHandler) Export(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := h.ctrl.Apply(c.Context(), c.Params("code"), q); err != nil {
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

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infield-hq/infield-console/internal/application/controller"
	"github.com/infield-hq/infield-console/internal/application/dto"
)

// CatalogHandler expone la cadena dependiente de la pantalla de catálogo:
// seleccionar cuenta carga proyectos, seleccionar proyecto carga roles y
// designaciones. El estado vive en el controlador; los handlers solo lo mueven.
type CatalogHandler struct {
	ctrl *controller.CatalogController
}

// NewCatalogHandler construye el handler inyectando el controlador.
func NewCatalogHandler(ctrl *controller.CatalogController) *CatalogHandler {
	return &CatalogHandler{ctrl: ctrl}
}

// Snapshot godoc
// @Summary      Estado vigente de la cadena de catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  controller.CatalogSnapshot
// @Router       /console/catalog [get]
func (h *CatalogHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.Snapshot())
}

// LoadAccounts godoc
// @Summary      Cargar el selector de cuentas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  controller.CatalogSnapshot
// @Router       /console/catalog/accounts [post]
func (h *CatalogHandler) LoadAccounts(c *fiber.Ctx) error {
	if err := h.ctrl.LoadAccounts(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.ctrl.Snapshot())
}

// SelectAccount godoc
// @Summary      Seleccionar cuenta y cargar sus proyectos
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  object{accountCode=string}  true  "Cuenta a seleccionar"
// @Success      200   {object}  controller.CatalogSnapshot
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /console/catalog/account [post]
func (h *CatalogHandler) SelectAccount(c *fiber.Ctx) error {
	var in struct {
		AccountCode string `json:"accountCode"`
	}
	if err := c.BodyParser(&in); err != nil || in.AccountCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "VALIDATION", Message: "accountCode es requerido"})
	}
	if err := h.ctrl.SelectAccount(c.Context(), in.AccountCode); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.ctrl.Snapshot())
}

// SelectProject godoc
// @Summary      Seleccionar proyecto y cargar roles y designaciones
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  object{projectId=string}  true  "Proyecto a seleccionar"
// @Success      200   {object}  controller.CatalogSnapshot
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /console/catalog/project [post]
func (h *CatalogHandler) SelectProject(c *fiber.Ctx) error {
	var in struct {
		ProjectID string `json:"projectId"`
	}
	if err := c.BodyParser(&in); err != nil || in.ProjectID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "VALIDATION", Message: "projectId es requerido"})
	}
	if err := h.ctrl.SelectProject(c.Context(), in.ProjectID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.ctrl.Snapshot())
}

// CreateRoles godoc
// @Summary      Crear roles en bloque
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBulkRolesRequest  true  "Roles a crear"
// @Success      201   {object}  controller.CatalogSnapshot
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /console/catalog/roles [post]
func (h *CatalogHandler) CreateRoles(c *fiber.Ctx) error {
	var in dto.CreateBulkRolesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.ctrl.CreateRoles(c.Context(), in.Roles); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.ctrl.Snapshot())
}

// UpdateRoles godoc
// @Summary      Actualizar roles en bloque
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBulkRolesRequest  true  "Roles a actualizar"
// @Success      200   {object}  controller.CatalogSnapshot
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /console/catalog/roles [put]
func (h *CatalogHandler) UpdateRoles(c *fiber.Ctx) error {
	var in dto.UpdateBulkRolesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ctrl.UpdateRoles(c.Context(), in.Roles); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.ctrl.Snapshot())
}

// DeleteRoles godoc
// @Summary      Borrar roles en bloque
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteBulkRolesRequest  true  "Ids a borrar"
// @Success      200   {object}  controller.CatalogSnapshot
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /console/catalog/roles [delete]
func (h *CatalogHandler) DeleteRoles(c *fiber.Ctx) error {
	var in dto.DeleteBulkRolesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ctrl.DeleteRoles(c.Context(), in.IDs); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.ctrl.Snapshot())
}

// CreateDesignations godoc
// @Summary      Crear designaciones en bloque
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBulkDesignationsRequest  true  "Designaciones a crear"
// @Success      201   {object}  controller.CatalogSnapshot
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /console/catalog/designations [post]
func (h *CatalogHandler) CreateDesignations(c *fiber.Ctx) error {
	var in dto.CreateBulkDesignationsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.ctrl.CreateDesignations(c.Context(), in.Designations); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.ctrl.Snapshot())
}

// UpdateDesignations godoc
// @Summary      Actualizar designaciones en bloque
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBulkDesignationsRequest  true  "Designaciones a actualizar"
// @Success      200   {object}  controller.CatalogSnapshot
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /console/catalog/designations [put]
func (h *CatalogHandler) UpdateDesignations(c *fiber.Ctx) error {
	var in dto.UpdateBulkDesignationsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ctrl.UpdateDesignations(c.Context(), in.Designations); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.ctrl.Snapshot())
}

// DeleteDesignations godoc
// @Summary      Borrar designaciones en bloque
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteBulkDesignationsRequest  true  "Ids a borrar"
// @Success      200   {object}  controller.CatalogSnapshot
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /console/catalog/designations [delete]
func (h *CatalogHandler) DeleteDesignations(c *fiber.Ctx) error {
	var in dto.DeleteBulkDesignationsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ctrl.DeleteDesignations(c.Context(), in.IDs); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.ctrl.Snapshot())
}

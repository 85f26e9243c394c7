package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/infield-hq/infield-console/internal/application/controller"
	"github.com/infield-hq/infield-console/internal/application/dto"
)

// AccountsHandler maneja las peticiones HTTP de la pantalla de cuentas.
type AccountsHandler struct {
	ctrl *controller.AccountsController
}

// NewAccountsHandler construye el handler inyectando el controlador.
func NewAccountsHandler(ctrl *controller.AccountsController) *AccountsHandler {
	return &AccountsHandler{ctrl: ctrl}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         accounts
// @Produce      json
// @Param        q         query  string  false  "Texto de búsqueda"
// @Param        status    query  string  false  "All | Active | Inactive"  default(All)
// @Param        page      query  int     false  "Página"                   default(1)
// @Param        pageSize  query  int     false  "Tamaño de página"         default(10)
// @Success      200  {object}  entity.Paginated[entity.Account]
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /console/accounts [get]
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := h.ctrl.Apply(c.Context(), q); err != nil {
		return writeError(c, err)
	}
	_, _, page := h.ctrl.Snapshot()
	return c.JSON(page)
}

// Get godoc
// @Summary      Obtener cuenta por código
// @Tags         accounts
// @Produce      json
// @Param        code  path  string  true  "Código de la cuenta"
// @Success      200  {object}  entity.Account
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /console/accounts/{code} [get]
func (h *AccountsHandler) Get(c *fiber.Ctx) error {
	// El detalle no pasa por el estado del controlador: lectura directa.
	acc, err := h.ctrl.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(acc)
}

// Create godoc
// @Summary      Crear cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  entity.Account
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /console/accounts [post]
func (h *AccountsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	acc, err := h.ctrl.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(acc)
}

// Update godoc
// @Summary      Actualizar cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateAccountRequest  true  "Cambios"
// @Success      200   {object}  entity.Account
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /console/accounts/{id} [put]
func (h *AccountsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	acc, err := h.ctrl.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(acc)
}

// Delete godoc
// @Summary      Eliminar cuenta
// @Tags         accounts
// @Produce      json
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /console/accounts/{id} [delete]
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	if err := h.ctrl.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar a CSV las cuentas visibles
// @Tags         accounts
// @Produce      text/csv
// @Param        q         query  string  false  "Texto de búsqueda"
// @Param        status    query  string  false  "All | Active | Inactive"
// @Param        page      query  int     false  "Página"
// @Param        pageSize  query  int     false  "Tamaño de página"
// @Success      200  {string}  string  "CSV"
// @Router       /console/accounts/export [get]
func (h *AccountsHandler) Export(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := h.ctrl.Apply(c.Context(), q); err != nil {
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

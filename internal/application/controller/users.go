package controller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/export"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// UsersController estado de la pantalla de usuarios de un proyecto.
// Solo listado y exportación: las mutaciones de usuarios no pasan por la consola.
type UsersController struct {
	api ports.AdminAPI

	mu          sync.RWMutex
	phase       Phase
	errMsg      string
	accountCode string
	projectCode string
	query       dto.ListQuery
	page        entity.Paginated[entity.User]
}

// NewUsersController arranca sin proyecto seleccionado.
func NewUsersController(api ports.AdminAPI) *UsersController {
	return &UsersController{api: api, phase: PhaseIdle, query: dto.ListQuery{}.Normalize()}
}

// SelectScope fija cuenta y proyecto y recarga desde la primera página.
func (c *UsersController) SelectScope(ctx context.Context, accountCode, projectCode string) error {
	c.mu.Lock()
	c.accountCode = accountCode
	c.projectCode = projectCode
	c.query = dto.ListQuery{}.Normalize()
	c.page = entity.Paginated[entity.User]{}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh recarga la página vigente.
func (c *UsersController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.phase = PhaseLoading
	accountCode, projectCode, query := c.accountCode, c.projectCode, c.query
	c.mu.Unlock()

	page, err := c.api.ListUsers(ctx, accountCode, projectCode, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.phase = PhaseError
		c.errMsg = ErrorMessage(err)
		return err
	}
	c.phase = PhaseSuccess
	c.errMsg = ""
	c.page = page
	return nil
}

// Apply reemplaza el alcance y los filtros completos y recarga.
func (c *UsersController) Apply(ctx context.Context, accountCode, projectCode string, q dto.ListQuery) error {
	c.mu.Lock()
	c.accountCode = accountCode
	c.projectCode = projectCode
	c.query = q.Normalize()
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Search fija el texto de búsqueda y vuelve a la primera página.
func (c *UsersController) Search(ctx context.Context, q string) error {
	c.mu.Lock()
	c.query.Q = q
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// FilterStatus fija el filtro de estado (incluye Onboarding para usuarios).
func (c *UsersController) FilterStatus(ctx context.Context, status string) error {
	c.mu.Lock()
	c.query.Status = status
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// GoToPage navega a la página pedida.
func (c *UsersController) GoToPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.query.Page = page
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Snapshot devuelve fase, mensaje de error y página vigentes.
func (c *UsersController) Snapshot() (Phase, string, entity.Paginated[entity.User]) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase, c.errMsg, c.page
}

// Visible devuelve las filas de la página vigente.
func (c *UsersController) Visible() []entity.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page.Items
}

var userCSVColumns = []export.Column[entity.User]{
	{Header: "Nombre", Value: func(u entity.User) string { return u.Name }},
	{Header: "Código de empleado", Value: func(u entity.User) string { return u.EmployeeCode }},
	{Header: "Email", Value: func(u entity.User) string { return u.Email }},
	{Header: "Designación", Value: func(u entity.User) string { return u.Designation }},
	{Header: "Rol de sistema", Value: func(u entity.User) string { return u.SystemRole }},
	{Header: "Tiendas asignadas", Value: func(u entity.User) string { return u.AssignedStoresLabel }},
	{Header: "Estado", Value: func(u entity.User) string { return string(u.Status) }},
}

// ExportCSV vuelca las filas visibles del proyecto seleccionado.
func (c *UsersController) ExportCSV(w io.Writer, now time.Time) (string, error) {
	if err := export.Write(w, userCSVColumns, c.Visible()); err != nil {
		return "", err
	}
	return export.Filename("usuarios", now), nil
}

package controller

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/export"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// ProjectsController estado de la pantalla de proyectos de una cuenta.
// Cambiar de cuenta descarta página y filtros: los proyectos de una cuenta
// no tienen sentido bajo otra.
type ProjectsController struct {
	api ports.AdminAPI

	mu          sync.RWMutex
	phase       Phase
	errMsg      string
	accountCode string
	query       dto.ListQuery
	page        entity.Paginated[entity.Project]
}

// NewProjectsController arranca sin cuenta seleccionada.
func NewProjectsController(api ports.AdminAPI) *ProjectsController {
	return &ProjectsController{api: api, phase: PhaseIdle, query: dto.ListQuery{}.Normalize()}
}

// SelectAccount fija la cuenta y recarga desde la primera página con los
// filtros por defecto.
func (c *ProjectsController) SelectAccount(ctx context.Context, accountCode string) error {
	c.mu.Lock()
	c.accountCode = accountCode
	c.query = dto.ListQuery{}.Normalize()
	c.page = entity.Paginated[entity.Project]{}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh recarga la página vigente. Sin cuenta seleccionada es inválido.
func (c *ProjectsController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.accountCode == "" {
		c.mu.Unlock()
		return fmt.Errorf("sin cuenta seleccionada: %w", domain.ErrInvalidInput)
	}
	c.phase = PhaseLoading
	accountCode, query := c.accountCode, c.query
	c.mu.Unlock()

	page, err := c.api.ListProjects(ctx, accountCode, query)

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

// Apply reemplaza cuenta y filtros completos y recarga.
func (c *ProjectsController) Apply(ctx context.Context, accountCode string, q dto.ListQuery) error {
	c.mu.Lock()
	c.accountCode = accountCode
	c.query = q.Normalize()
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Search fija el texto de búsqueda y vuelve a la primera página.
func (c *ProjectsController) Search(ctx context.Context, q string) error {
	c.mu.Lock()
	c.query.Q = q
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// FilterStatus fija el filtro de estado y vuelve a la primera página.
func (c *ProjectsController) FilterStatus(ctx context.Context, status string) error {
	c.mu.Lock()
	c.query.Status = status
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// GoToPage navega a la página pedida.
func (c *ProjectsController) GoToPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.query.Page = page
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Create valida, crea y refresca.
func (c *ProjectsController) Create(ctx context.Context, in dto.CreateProjectRequest) (entity.Project, error) {
	if err := validate.Struct(in); err != nil {
		return entity.Project{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	prj, err := c.api.CreateProject(ctx, in)
	if err != nil {
		return entity.Project{}, err
	}
	_ = c.Refresh(ctx)
	return prj, nil
}

// Update valida, actualiza y refresca.
func (c *ProjectsController) Update(ctx context.Context, projectID string, in dto.UpdateProjectRequest) (entity.Project, error) {
	if err := validate.Struct(in); err != nil {
		return entity.Project{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	prj, err := c.api.UpdateProject(ctx, projectID, in)
	if err != nil {
		return entity.Project{}, err
	}
	_ = c.Refresh(ctx)
	return prj, nil
}

// Delete borra y refresca.
func (c *ProjectsController) Delete(ctx context.Context, projectID string) error {
	if err := c.api.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// AccountCode devuelve la cuenta seleccionada ("" si ninguna).
func (c *ProjectsController) AccountCode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accountCode
}

// Snapshot devuelve fase, mensaje de error y página vigentes.
func (c *ProjectsController) Snapshot() (Phase, string, entity.Paginated[entity.Project]) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase, c.errMsg, c.page
}

// Visible devuelve las filas de la página vigente.
func (c *ProjectsController) Visible() []entity.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page.Items
}

var projectCSVColumns = []export.Column[entity.Project]{
	{Header: "Nombre", Value: func(p entity.Project) string { return p.Name }},
	{Header: "Código", Value: func(p entity.Project) string { return p.Code }},
	{Header: "Cuenta", Value: func(p entity.Project) string { return p.AccountCode }},
	{Header: "Región", Value: func(p entity.Project) string { return p.RegionLabel }},
	{Header: "Email del administrador", Value: func(p entity.Project) string { return p.ProjectAdminEmail }},
	{Header: "Módulos activos", Value: func(p entity.Project) string { return export.JoinList(p.ModulesActive) }},
	{Header: "Estado", Value: func(p entity.Project) string { return string(p.Status) }},
}

// ExportCSV vuelca las filas visibles de la cuenta seleccionada.
func (c *ProjectsController) ExportCSV(w io.Writer, now time.Time) (string, error) {
	if err := export.Write(w, projectCSVColumns, c.Visible()); err != nil {
		return "", err
	}
	return export.Filename("proyectos", now), nil
}

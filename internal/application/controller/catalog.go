package controller

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// CatalogSnapshot estado visible de la cadena cuentas -> proyectos ->
// roles/designaciones.
type CatalogSnapshot struct {
	Phase               Phase                `json:"phase"`
	ErrorMessage        string               `json:"errorMessage,omitempty"`
	Accounts            []entity.Account     `json:"accounts"`
	SelectedAccountCode string               `json:"selectedAccountCode"`
	Projects            []entity.Project     `json:"projects"`
	SelectedProjectID   string               `json:"selectedProjectId"`
	Roles               []entity.Role        `json:"roles"`
	Designations        []entity.Designation `json:"designations"`
}

// CatalogController secuencia la cadena dependiente de la pantalla de
// catálogo: elegir cuenta carga sus proyectos, elegir proyecto carga roles y
// designaciones en paralelo. Cambiar la selección invalida en el acto todo lo
// que cuelga de ella y sube el contador de generación: los resultados de
// peticiones viejas que lleguen tarde se descartan en vez de pisar la
// selección nueva.
type CatalogController struct {
	admin   ports.AdminAPI
	catalog ports.CatalogAPI

	mu              sync.RWMutex
	phase           Phase
	errMsg          string
	accounts        []entity.Account
	selectedAccount string
	projects        []entity.Project
	selectedProject string
	roles           []entity.Role
	designations    []entity.Designation
	gen             uint64
}

// NewCatalogController arranca sin selección.
func NewCatalogController(admin ports.AdminAPI, catalog ports.CatalogAPI) *CatalogController {
	return &CatalogController{admin: admin, catalog: catalog, phase: PhaseIdle}
}

// LoadAccounts carga el selector de cuentas (todas las que quepan en la
// página máxima; el selector no pagina).
func (c *CatalogController) LoadAccounts(ctx context.Context) error {
	c.mu.Lock()
	c.phase = PhaseLoading
	c.mu.Unlock()

	page, err := c.admin.ListAccounts(ctx, dto.ListQuery{PageSize: dto.MaxPageSize})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.phase = PhaseError
		c.errMsg = ErrorMessage(err)
		return err
	}
	c.phase = PhaseSuccess
	c.errMsg = ""
	c.accounts = page.Items
	return nil
}

// SelectAccount fija la cuenta y carga sus proyectos. La invalidación de
// proyectos, roles y designaciones es síncrona: ocurre antes de emitir la
// petición, no cuando responde.
func (c *CatalogController) SelectAccount(ctx context.Context, accountCode string) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.selectedAccount = accountCode
	c.selectedProject = ""
	c.projects = nil
	c.roles = nil
	c.designations = nil
	c.phase = PhaseLoading
	c.mu.Unlock()

	page, err := c.admin.ListProjects(ctx, accountCode, dto.ListQuery{PageSize: dto.MaxPageSize})

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// Llegó tarde: la selección ya cambió y este resultado no aplica.
		return nil
	}
	if err != nil {
		c.phase = PhaseError
		c.errMsg = ErrorMessage(err)
		return err
	}
	c.phase = PhaseSuccess
	c.errMsg = ""
	c.projects = page.Items
	return nil
}

// SelectProject fija el proyecto y carga roles y designaciones en paralelo.
func (c *CatalogController) SelectProject(ctx context.Context, projectID string) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.selectedProject = projectID
	c.roles = nil
	c.designations = nil
	c.phase = PhaseLoading
	c.mu.Unlock()

	var roles []entity.Role
	var designations []entity.Designation
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roles, err = c.catalog.GetRolesByProject(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		designations, err = c.catalog.GetDesignationsByProject(gctx, projectID)
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	if err != nil {
		c.phase = PhaseError
		c.errMsg = ErrorMessage(err)
		return err
	}
	c.phase = PhaseSuccess
	c.errMsg = ""
	c.roles = roles
	c.designations = designations
	return nil
}

// refetchCatalog recarga roles y designaciones del proyecto seleccionado tras
// una mutación. Reutiliza SelectProject: mismo paralelo, misma guarda.
func (c *CatalogController) refetchCatalog(ctx context.Context) error {
	c.mu.RLock()
	projectID := c.selectedProject
	c.mu.RUnlock()
	if projectID == "" {
		return fmt.Errorf("sin proyecto seleccionado: %w", domain.ErrInvalidInput)
	}
	return c.SelectProject(ctx, projectID)
}

// CreateRoles valida el lote, lo crea y recarga el catálogo.
func (c *CatalogController) CreateRoles(ctx context.Context, roles []dto.CreateRoleRequest) ([]entity.Role, error) {
	in := dto.CreateBulkRolesRequest{Roles: roles}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	created, err := c.catalog.CreateRoles(ctx, roles)
	if err != nil {
		return nil, err
	}
	_ = c.refetchCatalog(ctx)
	return created, nil
}

// UpdateRoles valida, actualiza y recarga. El backend no devuelve los
// actualizados: el refetch es la única forma de observar el efecto.
func (c *CatalogController) UpdateRoles(ctx context.Context, roles []dto.UpdateRoleRequest) error {
	in := dto.UpdateBulkRolesRequest{Roles: roles}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if err := c.catalog.UpdateRoles(ctx, roles); err != nil {
		return err
	}
	return c.refetchCatalog(ctx)
}

// DeleteRoles borra el lote y recarga.
func (c *CatalogController) DeleteRoles(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("lote de borrado vacío: %w", domain.ErrInvalidInput)
	}
	if err := c.catalog.DeleteRoles(ctx, ids); err != nil {
		return err
	}
	return c.refetchCatalog(ctx)
}

// CreateDesignations valida el lote, lo crea y recarga el catálogo.
func (c *CatalogController) CreateDesignations(ctx context.Context, designations []dto.CreateDesignationRequest) ([]entity.Designation, error) {
	in := dto.CreateBulkDesignationsRequest{Designations: designations}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	created, err := c.catalog.CreateDesignations(ctx, designations)
	if err != nil {
		return nil, err
	}
	_ = c.refetchCatalog(ctx)
	return created, nil
}

// UpdateDesignations valida, actualiza y recarga.
func (c *CatalogController) UpdateDesignations(ctx context.Context, designations []dto.UpdateDesignationRequest) error {
	in := dto.UpdateBulkDesignationsRequest{Designations: designations}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if err := c.catalog.UpdateDesignations(ctx, designations); err != nil {
		return err
	}
	return c.refetchCatalog(ctx)
}

// DeleteDesignations borra el lote y recarga.
func (c *CatalogController) DeleteDesignations(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("lote de borrado vacío: %w", domain.ErrInvalidInput)
	}
	if err := c.catalog.DeleteDesignations(ctx, ids); err != nil {
		return err
	}
	return c.refetchCatalog(ctx)
}

// Snapshot devuelve el estado completo de la cadena.
func (c *CatalogController) Snapshot() CatalogSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CatalogSnapshot{
		Phase:               c.phase,
		ErrorMessage:        c.errMsg,
		Accounts:            c.accounts,
		SelectedAccountCode: c.selectedAccount,
		Projects:            c.projects,
		SelectedProjectID:   c.selectedProject,
		Roles:               c.roles,
		Designations:        c.designations,
	}
}

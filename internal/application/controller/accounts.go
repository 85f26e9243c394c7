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

// AccountsController estado de la pantalla de cuentas: página vigente,
// filtros y flujo de mutaciones con refetch.
type AccountsController struct {
	api ports.AdminAPI

	mu     sync.RWMutex
	phase  Phase
	errMsg string
	query  dto.ListQuery
	page   entity.Paginated[entity.Account]
}

// NewAccountsController arranca en idle con los filtros por defecto.
func NewAccountsController(api ports.AdminAPI) *AccountsController {
	return &AccountsController{api: api, phase: PhaseIdle, query: dto.ListQuery{}.Normalize()}
}

// Refresh recarga la página vigente con los filtros vigentes. En fallo la
// última página buena se conserva y el error queda disponible en Snapshot.
func (c *AccountsController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.phase = PhaseLoading
	query := c.query
	c.mu.Unlock()

	page, err := c.api.ListAccounts(ctx, query)

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

// Apply reemplaza los filtros completos y recarga. Es la entrada que usa el
// gateway: cada petición de listado trae su propio ListQuery.
func (c *AccountsController) Apply(ctx context.Context, q dto.ListQuery) error {
	c.mu.Lock()
	c.query = q.Normalize()
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Search fija el texto de búsqueda y vuelve a la primera página.
func (c *AccountsController) Search(ctx context.Context, q string) error {
	c.mu.Lock()
	c.query.Q = q
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// FilterStatus fija el filtro de estado y vuelve a la primera página.
func (c *AccountsController) FilterStatus(ctx context.Context, status string) error {
	c.mu.Lock()
	c.query.Status = status
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// GoToPage navega a la página pedida con los filtros vigentes.
func (c *AccountsController) GoToPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.query.Page = page
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// GetByCode lee una cuenta por código sin tocar el estado de la pantalla.
func (c *AccountsController) GetByCode(ctx context.Context, accountCode string) (entity.Account, error) {
	if accountCode == "" {
		return entity.Account{}, fmt.Errorf("código de cuenta vacío: %w", domain.ErrInvalidInput)
	}
	return c.api.GetAccountByCode(ctx, accountCode)
}

// Create valida, crea y refresca la página vigente. En fallo de validación no
// se llega a la fachada.
func (c *AccountsController) Create(ctx context.Context, in dto.CreateAccountRequest) (entity.Account, error) {
	if err := validate.Struct(in); err != nil {
		return entity.Account{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	acc, err := c.api.CreateAccount(ctx, in)
	if err != nil {
		return entity.Account{}, err
	}
	_ = c.Refresh(ctx)
	return acc, nil
}

// Update valida, actualiza y refresca.
func (c *AccountsController) Update(ctx context.Context, accountID string, in dto.UpdateAccountRequest) (entity.Account, error) {
	if err := validate.Struct(in); err != nil {
		return entity.Account{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	acc, err := c.api.UpdateAccount(ctx, accountID, in)
	if err != nil {
		return entity.Account{}, err
	}
	_ = c.Refresh(ctx)
	return acc, nil
}

// Delete borra y refresca.
func (c *AccountsController) Delete(ctx context.Context, accountID string) error {
	if err := c.api.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Snapshot devuelve fase, mensaje de error y página vigentes.
func (c *AccountsController) Snapshot() (Phase, string, entity.Paginated[entity.Account]) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase, c.errMsg, c.page
}

// Visible devuelve las filas de la página vigente.
func (c *AccountsController) Visible() []entity.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page.Items
}

// accountCSVColumns columnas de la exportación de cuentas.
var accountCSVColumns = []export.Column[entity.Account]{
	{Header: "Nombre", Value: func(a entity.Account) string { return a.Name }},
	{Header: "Código", Value: func(a entity.Account) string { return a.Code }},
	{Header: "Administrador", Value: func(a entity.Account) string { return a.PrimaryAdminName }},
	{Header: "Email", Value: func(a entity.Account) string { return a.PrimaryAdminEmail }},
	{Header: "Proyectos activos", Value: func(a entity.Account) string { return fmt.Sprintf("%d", a.ProjectsActiveCount) }},
	{Header: "Estado", Value: func(a entity.Account) string { return string(a.Status) }},
	{Header: "Creada", Value: func(a entity.Account) string { return a.CreatedAtIso }},
}

// ExportCSV vuelca las filas visibles (página y filtros vigentes) y devuelve
// el nombre de descarga con la fecha del día.
func (c *AccountsController) ExportCSV(w io.Writer, now time.Time) (string, error) {
	if err := export.Write(w, accountCSVColumns, c.Visible()); err != nil {
		return "", err
	}
	return export.Filename("cuentas", now), nil
}

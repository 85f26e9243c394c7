package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/filter"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

var _ ports.AdminAPI = (*AdminAPI)(nil)

// AdminAPI fachada mock de cuentas, proyectos y usuarios sobre el store en
// memoria. Aplica exactamente el mismo filtrado y paginación que la fachada
// real para que la UI no distinga el modo.
type AdminAPI struct {
	store *Store
}

// NewAdminAPI construye la fachada sobre el store compartido.
func NewAdminAPI(store *Store) *AdminAPI {
	return &AdminAPI{store: store}
}

// ─────────────────────────────────────────────────────────────
// Cuentas
// ─────────────────────────────────────────────────────────────

// ListAccounts filtra por texto y estado y pagina el resultado.
func (a *AdminAPI) ListAccounts(_ context.Context, q dto.ListQuery) (entity.Paginated[entity.Account], error) {
	q = q.Normalize()
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	matched := make([]entity.Account, 0, len(a.store.accounts))
	for _, acc := range a.store.accounts {
		if !filter.MatchesStatus(q.Status, acc.Status) {
			continue
		}
		if !filter.MatchesText(q.Q, acc.Name, acc.Code, acc.PrimaryAdminName, acc.PrimaryAdminEmail) {
			continue
		}
		matched = append(matched, acc)
	}
	return entity.PaginateSlice(matched, q.Page, q.PageSize), nil
}

// GetAccount busca una cuenta por id.
func (a *AdminAPI) GetAccount(_ context.Context, accountID string) (entity.Account, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	for _, acc := range a.store.accounts {
		if acc.ID == accountID {
			return acc, nil
		}
	}
	return entity.Account{}, fmt.Errorf("cuenta %s: %w", accountID, domain.ErrNotFound)
}

// GetAccountByCode busca una cuenta por código de negocio.
func (a *AdminAPI) GetAccountByCode(_ context.Context, accountCode string) (entity.Account, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	for _, acc := range a.store.accounts {
		if acc.Code == accountCode {
			return acc, nil
		}
	}
	return entity.Account{}, fmt.Errorf("cuenta %s: %w", accountCode, domain.ErrNotFound)
}

// CreateAccount emite un código nuevo de la secuencia y arranca la cuenta
// activa y sin proyectos, igual que hace el backend real.
func (a *AdminAPI) CreateAccount(_ context.Context, in dto.CreateAccountRequest) (entity.Account, error) {
	if in.AccountName == "" || in.Email == "" {
		return entity.Account{}, fmt.Errorf("accountName y email son obligatorios: %w", domain.ErrInvalidInput)
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	status := entity.StatusActive
	if in.Status == "INACTIVE" {
		status = entity.StatusInactive
	}
	acc := entity.Account{
		ID:                  uuid.NewString(),
		Name:                in.AccountName,
		Code:                a.store.nextAccountCode(),
		PrimaryAdminEmail:   in.Email,
		ProjectsActiveCount: 0,
		Status:              status,
		CreatedAtIso:        time.Now().UTC().Format(time.RFC3339),
	}
	a.store.accounts = append(a.store.accounts, acc)
	return acc, nil
}

// UpdateAccount aplica los campos presentes; el código nunca cambia.
func (a *AdminAPI) UpdateAccount(_ context.Context, accountID string, in dto.UpdateAccountRequest) (entity.Account, error) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i := range a.store.accounts {
		if a.store.accounts[i].ID != accountID {
			continue
		}
		if in.AccountName != "" {
			a.store.accounts[i].Name = in.AccountName
		}
		if in.Email != "" {
			a.store.accounts[i].PrimaryAdminEmail = in.Email
		}
		if in.Status != "" {
			if in.Status == "INACTIVE" {
				a.store.accounts[i].Status = entity.StatusInactive
			} else {
				a.store.accounts[i].Status = entity.StatusActive
			}
		}
		return a.store.accounts[i], nil
	}
	return entity.Account{}, fmt.Errorf("cuenta %s: %w", accountID, domain.ErrNotFound)
}

// DeleteAccount elimina la cuenta; un id desconocido es not-found, nunca un
// borrado silencioso.
func (a *AdminAPI) DeleteAccount(_ context.Context, accountID string) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i := range a.store.accounts {
		if a.store.accounts[i].ID == accountID {
			a.store.accounts = append(a.store.accounts[:i], a.store.accounts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cuenta %s: %w", accountID, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────
// Proyectos
// ─────────────────────────────────────────────────────────────

// ListProjects valida primero que la cuenta exista (misma semántica que la
// resolución en dos viajes de la fachada real) y después filtra y pagina.
func (a *AdminAPI) ListProjects(_ context.Context, accountCode string, q dto.ListQuery) (entity.Paginated[entity.Project], error) {
	q = q.Normalize()
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	if !a.accountCodeExistsLocked(accountCode) {
		return entity.Paginated[entity.Project]{}, fmt.Errorf("cuenta %s: %w", accountCode, domain.ErrNotFound)
	}

	matched := make([]entity.Project, 0)
	for _, prj := range a.store.projects {
		if prj.AccountCode != accountCode {
			continue
		}
		if !filter.MatchesStatus(q.Status, prj.Status) {
			continue
		}
		if !filter.MatchesText(q.Q, prj.Name, prj.Code, prj.ProjectAdminName, prj.ProjectAdminEmail) {
			continue
		}
		matched = append(matched, prj)
	}
	return entity.PaginateSlice(matched, q.Page, q.PageSize), nil
}

// GetProject busca un proyecto por id.
func (a *AdminAPI) GetProject(_ context.Context, projectID string) (entity.Project, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	for _, prj := range a.store.projects {
		if prj.ID == projectID {
			return prj, nil
		}
	}
	return entity.Project{}, fmt.Errorf("proyecto %s: %w", projectID, domain.ErrNotFound)
}

// GetProjectByCode busca un proyecto por código de negocio.
func (a *AdminAPI) GetProjectByCode(_ context.Context, projectCode string) (entity.Project, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	for _, prj := range a.store.projects {
		if prj.Code == projectCode {
			return prj, nil
		}
	}
	return entity.Project{}, fmt.Errorf("proyecto %s: %w", projectCode, domain.ErrNotFound)
}

// CreateProject crea el proyecto bajo la cuenta indicada por id opaco y
// actualiza el contador de proyectos activos de la cuenta.
func (a *AdminAPI) CreateProject(_ context.Context, in dto.CreateProjectRequest) (entity.Project, error) {
	if in.ProjectName == "" || in.AccountID == "" {
		return entity.Project{}, fmt.Errorf("projectName y accountId son obligatorios: %w", domain.ErrInvalidInput)
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	var owner *entity.Account
	for i := range a.store.accounts {
		if a.store.accounts[i].ID == in.AccountID {
			owner = &a.store.accounts[i]
			break
		}
	}
	if owner == nil {
		return entity.Project{}, fmt.Errorf("cuenta %s: %w", in.AccountID, domain.ErrNotFound)
	}

	status := entity.StatusActive
	if in.Status == "INACTIVE" {
		status = entity.StatusInactive
	}
	prj := entity.Project{
		ID:                uuid.NewString(),
		AccountCode:       owner.Code,
		Name:              in.ProjectName,
		Code:              a.store.nextProjectCode(),
		ProjectAdminEmail: in.Email,
		ModulesActive:     []string{},
		Status:            status,
	}
	a.store.projects = append(a.store.projects, prj)
	if status == entity.StatusActive {
		owner.ProjectsActiveCount++
	}
	return prj, nil
}

// UpdateProject aplica los campos presentes, ajustando el contador de la
// cuenta cuando el estado cruza activo/inactivo.
func (a *AdminAPI) UpdateProject(_ context.Context, projectID string, in dto.UpdateProjectRequest) (entity.Project, error) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i := range a.store.projects {
		if a.store.projects[i].ID != projectID {
			continue
		}
		prj := &a.store.projects[i]
		if in.ProjectName != "" {
			prj.Name = in.ProjectName
		}
		if in.Email != "" {
			prj.ProjectAdminEmail = in.Email
		}
		if in.Status != "" {
			next := entity.StatusActive
			if in.Status == "INACTIVE" {
				next = entity.StatusInactive
			}
			if next != prj.Status {
				a.adjustActiveCountLocked(prj.AccountCode, next == entity.StatusActive)
				prj.Status = next
			}
		}
		return *prj, nil
	}
	return entity.Project{}, fmt.Errorf("proyecto %s: %w", projectID, domain.ErrNotFound)
}

// DeleteProject elimina el proyecto y descuenta del contador si estaba activo.
func (a *AdminAPI) DeleteProject(_ context.Context, projectID string) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i := range a.store.projects {
		if a.store.projects[i].ID != projectID {
			continue
		}
		prj := a.store.projects[i]
		a.store.projects = append(a.store.projects[:i], a.store.projects[i+1:]...)
		if prj.Status == entity.StatusActive {
			a.adjustActiveCountLocked(prj.AccountCode, false)
		}
		return nil
	}
	return fmt.Errorf("proyecto %s: %w", projectID, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────
// Usuarios
// ─────────────────────────────────────────────────────────────

// ListUsers filtra los usuarios del proyecto por texto y estado.
func (a *AdminAPI) ListUsers(_ context.Context, accountCode, projectCode string, q dto.ListQuery) (entity.Paginated[entity.User], error) {
	q = q.Normalize()
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	matched := make([]entity.User, 0)
	for _, u := range a.store.users {
		if accountCode != "" && u.AccountCode != accountCode {
			continue
		}
		if projectCode != "" && u.ProjectCode != projectCode {
			continue
		}
		if !filter.MatchesStatus(q.Status, u.Status) {
			continue
		}
		if !filter.MatchesText(q.Q, u.Name, u.EmployeeCode, u.Email, u.Designation) {
			continue
		}
		matched = append(matched, u)
	}
	return entity.PaginateSlice(matched, q.Page, q.PageSize), nil
}

// ─────────────────────────────────────────────────────────────
// Helpers con lock tomado
// ─────────────────────────────────────────────────────────────

func (a *AdminAPI) accountCodeExistsLocked(code string) bool {
	for _, acc := range a.store.accounts {
		if acc.Code == code {
			return true
		}
	}
	return false
}

func (a *AdminAPI) adjustActiveCountLocked(accountCode string, increment bool) {
	for i := range a.store.accounts {
		if a.store.accounts[i].Code != accountCode {
			continue
		}
		if increment {
			a.store.accounts[i].ProjectsActiveCount++
		} else if a.store.accounts[i].ProjectsActiveCount > 0 {
			a.store.accounts[i].ProjectsActiveCount--
		}
		return
	}
}

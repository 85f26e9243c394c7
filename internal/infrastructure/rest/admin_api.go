package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/filter"
	"github.com/infield-hq/infield-console/internal/application/mapper"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// Asegura que AdminAPI implementa el puerto.
var _ ports.AdminAPI = (*AdminAPI)(nil)

// AdminAPI fachada real de cuentas, proyectos y usuarios sobre el backend.
type AdminAPI struct {
	client *Client
}

// NewAdminAPI construye la fachada sobre el transporte compartido.
func NewAdminAPI(client *Client) *AdminAPI {
	return &AdminAPI{client: client}
}

// ─────────────────────────────────────────────────────────────
// Cuentas
// ─────────────────────────────────────────────────────────────

// ListAccounts lista cuentas normalizando cualquier forma de envoltura.
// El backend solo pagina; q y status se aplican sobre la página recibida
// (misma limitación deliberada que el filtrado en cliente de las páginas).
func (a *AdminAPI) ListAccounts(ctx context.Context, q dto.ListQuery) (entity.Paginated[entity.Account], error) {
	q = q.Normalize()

	var raw json.RawMessage
	path := "/api/v1/accounts" + buildQueryString(q, nil)
	if err := a.client.Get(ctx, path, &raw); err != nil {
		return entity.Paginated[entity.Account]{}, err
	}

	env, err := mapper.DecodeList(raw)
	if err != nil {
		return entity.Paginated[entity.Account]{}, err
	}
	backends, err := mapper.DecodeItems[dto.BackendAccount](env)
	if err != nil {
		return entity.Paginated[entity.Account]{}, err
	}

	items := make([]entity.Account, 0, len(backends))
	for _, b := range backends {
		acc := mapper.Account(b)
		if !filter.MatchesStatus(q.Status, acc.Status) {
			continue
		}
		if !filter.MatchesText(q.Q, acc.Name, acc.Code, acc.PrimaryAdminName, acc.PrimaryAdminEmail) {
			continue
		}
		items = append(items, acc)
	}

	return paginatedFromEnvelope(env, q, items), nil
}

// GetAccount obtiene una cuenta por id opaco.
func (a *AdminAPI) GetAccount(ctx context.Context, accountID string) (entity.Account, error) {
	var b dto.BackendAccount
	if err := a.client.Get(ctx, "/api/v1/accounts/"+url.PathEscape(accountID), &b); err != nil {
		return entity.Account{}, err
	}
	return mapper.Account(b), nil
}

// GetAccountByCode obtiene una cuenta por su código de negocio.
func (a *AdminAPI) GetAccountByCode(ctx context.Context, accountCode string) (entity.Account, error) {
	var b dto.BackendAccount
	if err := a.client.Get(ctx, "/api/v1/accounts/code/"+url.PathEscape(accountCode), &b); err != nil {
		return entity.Account{}, err
	}
	return mapper.Account(b), nil
}

// CreateAccount crea la cuenta y devuelve la entidad autoritativa ya mapeada.
func (a *AdminAPI) CreateAccount(ctx context.Context, in dto.CreateAccountRequest) (entity.Account, error) {
	var b dto.BackendAccount
	if err := a.client.Post(ctx, "/api/v1/accounts", in, &b); err != nil {
		return entity.Account{}, err
	}
	return mapper.Account(b), nil
}

// UpdateAccount actualiza campos mutables de la cuenta.
func (a *AdminAPI) UpdateAccount(ctx context.Context, accountID string, in dto.UpdateAccountRequest) (entity.Account, error) {
	var b dto.BackendAccount
	if err := a.client.Put(ctx, "/api/v1/accounts/"+url.PathEscape(accountID), in, &b); err != nil {
		return entity.Account{}, err
	}
	return mapper.Account(b), nil
}

// DeleteAccount borra (soft delete en el backend) una cuenta.
func (a *AdminAPI) DeleteAccount(ctx context.Context, accountID string) error {
	return a.client.Delete(ctx, "/api/v1/accounts/"+url.PathEscape(accountID), nil)
}

// ─────────────────────────────────────────────────────────────
// Proyectos
// ─────────────────────────────────────────────────────────────

// ListProjects lista los proyectos de una cuenta direccionada por código.
// Protocolo de dos viajes: primero se resuelve accountCode -> accountId y
// después se consulta /projects?accountId=...; si la cuenta no existe, el
// primer viaje devuelve not-found y el segundo nunca se emite.
func (a *AdminAPI) ListProjects(ctx context.Context, accountCode string, q dto.ListQuery) (entity.Paginated[entity.Project], error) {
	q = q.Normalize()

	var account dto.BackendAccount
	if err := a.client.Get(ctx, "/api/v1/accounts/code/"+url.PathEscape(accountCode), &account); err != nil {
		return entity.Paginated[entity.Project]{}, fmt.Errorf("resolver cuenta %s: %w", accountCode, err)
	}

	extra := map[string]string{}
	if accountID := firstNonEmpty(account.ID, account.MongoID); accountID != "" {
		extra["accountId"] = accountID
	}

	var raw json.RawMessage
	path := "/api/v1/projects" + buildQueryString(q, extra)
	if err := a.client.Get(ctx, path, &raw); err != nil {
		return entity.Paginated[entity.Project]{}, err
	}

	env, err := mapper.DecodeList(raw)
	if err != nil {
		return entity.Paginated[entity.Project]{}, err
	}
	backends, err := mapper.DecodeItems[dto.BackendProject](env)
	if err != nil {
		return entity.Paginated[entity.Project]{}, err
	}

	items := make([]entity.Project, 0, len(backends))
	for _, b := range backends {
		prj := mapper.Project(b, accountCode)
		if !filter.MatchesStatus(q.Status, prj.Status) {
			continue
		}
		if !filter.MatchesText(q.Q, prj.Name, prj.Code, prj.ProjectAdminName, prj.ProjectAdminEmail) {
			continue
		}
		items = append(items, prj)
	}

	return paginatedFromEnvelope(env, q, items), nil
}

// GetProject obtiene un proyecto por id. El accountCode no está disponible
// desde este endpoint y queda vacío.
func (a *AdminAPI) GetProject(ctx context.Context, projectID string) (entity.Project, error) {
	var b dto.BackendProject
	if err := a.client.Get(ctx, "/api/v1/projects/"+url.PathEscape(projectID), &b); err != nil {
		return entity.Project{}, err
	}
	return mapper.Project(b, ""), nil
}

// GetProjectByCode obtiene un proyecto por su código de negocio.
func (a *AdminAPI) GetProjectByCode(ctx context.Context, projectCode string) (entity.Project, error) {
	var b dto.BackendProject
	if err := a.client.Get(ctx, "/api/v1/projects/code/"+url.PathEscape(projectCode), &b); err != nil {
		return entity.Project{}, err
	}
	return mapper.Project(b, ""), nil
}

// CreateProject crea el proyecto y devuelve la entidad autoritativa.
func (a *AdminAPI) CreateProject(ctx context.Context, in dto.CreateProjectRequest) (entity.Project, error) {
	var b dto.BackendProject
	if err := a.client.Post(ctx, "/api/v1/projects", in, &b); err != nil {
		return entity.Project{}, err
	}
	return mapper.Project(b, ""), nil
}

// UpdateProject actualiza campos mutables del proyecto.
func (a *AdminAPI) UpdateProject(ctx context.Context, projectID string, in dto.UpdateProjectRequest) (entity.Project, error) {
	var b dto.BackendProject
	if err := a.client.Put(ctx, "/api/v1/projects/"+url.PathEscape(projectID), in, &b); err != nil {
		return entity.Project{}, err
	}
	return mapper.Project(b, ""), nil
}

// DeleteProject borra un proyecto.
func (a *AdminAPI) DeleteProject(ctx context.Context, projectID string) error {
	return a.client.Delete(ctx, "/api/v1/projects/"+url.PathEscape(projectID), nil)
}

// ─────────────────────────────────────────────────────────────
// Usuarios
// ─────────────────────────────────────────────────────────────

// ListUsers el backend aún no expone el recurso de usuarios; se devuelve una
// página vacía con los parámetros pedidos para que la UI no distinga el caso.
func (a *AdminAPI) ListUsers(_ context.Context, _, _ string, q dto.ListQuery) (entity.Paginated[entity.User], error) {
	q = q.Normalize()
	return entity.Paginated[entity.User]{
		Items:    []entity.User{},
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    0,
	}, nil
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// buildQueryString arma el query string con la paginación y extras.
// q y status no viajan al backend: se filtran en cliente.
func buildQueryString(q dto.ListQuery, extra map[string]string) string {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	for key, value := range extra {
		params.Set(key, value)
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// paginatedFromEnvelope arma la página normalizada: los metadatos declarados
// por el backend mandan; en su ausencia se usan los de la consulta y el
// total cae a la longitud recibida.
func paginatedFromEnvelope[T any](env *mapper.ListEnvelope, q dto.ListQuery, items []T) entity.Paginated[T] {
	page := env.Page
	if page <= 0 {
		page = q.Page
	}
	pageSize := env.PageSize
	if pageSize <= 0 {
		pageSize = q.PageSize
	}
	return entity.Paginated[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    env.DeclaredTotal(),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

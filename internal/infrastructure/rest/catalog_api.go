package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/mapper"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

var _ ports.CatalogAPI = (*CatalogAPI)(nil)

// CatalogAPI fachada real de roles y designaciones. El backend expone los
// tres mutadores como endpoints bulk bajo POST; solo create devuelve cuerpo.
type CatalogAPI struct {
	client *Client
}

// NewCatalogAPI construye la fachada sobre el transporte compartido.
func NewCatalogAPI(client *Client) *CatalogAPI {
	return &CatalogAPI{client: client}
}

// ─────────────────────────────────────────────────────────────
// Roles
// ─────────────────────────────────────────────────────────────

// GetRolesByProject lista los roles del proyecto. Acepta tanto el sobre con
// clave "roles" como las formas genéricas de listado.
func (c *CatalogAPI) GetRolesByProject(ctx context.Context, projectID string) ([]entity.Role, error) {
	var raw json.RawMessage
	path := "/api/v1/role/getRolesByProject/" + url.PathEscape(projectID)
	if err := c.client.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	backends, err := decodeKeyedList[dto.BackendRole](raw, "roles")
	if err != nil {
		return nil, err
	}
	roles := make([]entity.Role, 0, len(backends))
	for _, b := range backends {
		roles = append(roles, mapper.Role(b))
	}
	return roles, nil
}

// GetRoleByName busca un rol por nombre dentro del proyecto. La búsqueda es
// local al listado: el backend no expone un endpoint por nombre.
func (c *CatalogAPI) GetRoleByName(ctx context.Context, projectID, roleName string) (entity.Role, error) {
	roles, err := c.GetRolesByProject(ctx, projectID)
	if err != nil {
		return entity.Role{}, err
	}
	for _, r := range roles {
		if r.RoleName == roleName {
			return r, nil
		}
	}
	return entity.Role{}, fmt.Errorf("rol %q: %w", roleName, domain.ErrNotFound)
}

// CreateRoles crea roles en bloque y devuelve los creados ya mapeados.
func (c *CatalogAPI) CreateRoles(ctx context.Context, roles []dto.CreateRoleRequest) ([]entity.Role, error) {
	var raw json.RawMessage
	body := dto.CreateBulkRolesRequest{Roles: roles}
	if err := c.client.Post(ctx, "/api/v1/role/createRoles", body, &raw); err != nil {
		return nil, err
	}
	backends, err := decodeKeyedList[dto.BackendRole](raw, "roles")
	if err != nil {
		return nil, err
	}
	created := make([]entity.Role, 0, len(backends))
	for _, b := range backends {
		created = append(created, mapper.Role(b))
	}
	return created, nil
}

// UpdateRoles actualiza roles en bloque. El backend no devuelve cuerpo útil;
// el llamador debe re-consultar para observar el efecto.
func (c *CatalogAPI) UpdateRoles(ctx context.Context, roles []dto.UpdateRoleRequest) error {
	body := dto.UpdateBulkRolesRequest{Roles: roles}
	return c.client.Post(ctx, "/api/v1/role/updateRoles", body, nil)
}

// DeleteRoles borra roles en bloque por id.
func (c *CatalogAPI) DeleteRoles(ctx context.Context, ids []string) error {
	body := dto.DeleteBulkRolesRequest{IDs: ids}
	return c.client.Post(ctx, "/api/v1/role/deleteRoles", body, nil)
}

// ─────────────────────────────────────────────────────────────
// Designaciones
// ─────────────────────────────────────────────────────────────

// GetDesignationsByProject lista las designaciones del proyecto.
func (c *CatalogAPI) GetDesignationsByProject(ctx context.Context, projectID string) ([]entity.Designation, error) {
	var raw json.RawMessage
	path := "/api/v1/designation/getDesignationsByProject/" + url.PathEscape(projectID)
	if err := c.client.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	backends, err := decodeKeyedList[dto.BackendDesignation](raw, "designations")
	if err != nil {
		return nil, err
	}
	designations := make([]entity.Designation, 0, len(backends))
	for _, b := range backends {
		designations = append(designations, mapper.Designation(b))
	}
	return designations, nil
}

// GetDesignationByName busca una designación por nombre dentro del proyecto.
func (c *CatalogAPI) GetDesignationByName(ctx context.Context, projectID, name string) (entity.Designation, error) {
	designations, err := c.GetDesignationsByProject(ctx, projectID)
	if err != nil {
		return entity.Designation{}, err
	}
	for _, d := range designations {
		if d.Name == name {
			return d, nil
		}
	}
	return entity.Designation{}, fmt.Errorf("designación %q: %w", name, domain.ErrNotFound)
}

// CreateDesignations crea designaciones en bloque.
func (c *CatalogAPI) CreateDesignations(ctx context.Context, designations []dto.CreateDesignationRequest) ([]entity.Designation, error) {
	var raw json.RawMessage
	body := dto.CreateBulkDesignationsRequest{Designations: designations}
	if err := c.client.Post(ctx, "/api/v1/designation/createDesignations", body, &raw); err != nil {
		return nil, err
	}
	backends, err := decodeKeyedList[dto.BackendDesignation](raw, "designations")
	if err != nil {
		return nil, err
	}
	created := make([]entity.Designation, 0, len(backends))
	for _, b := range backends {
		created = append(created, mapper.Designation(b))
	}
	return created, nil
}

// UpdateDesignations actualiza designaciones en bloque, sin cuerpo de vuelta.
func (c *CatalogAPI) UpdateDesignations(ctx context.Context, designations []dto.UpdateDesignationRequest) error {
	body := dto.UpdateBulkDesignationsRequest{Designations: designations}
	return c.client.Post(ctx, "/api/v1/designation/updateDesignations", body, nil)
}

// DeleteDesignations borra designaciones en bloque por id.
func (c *CatalogAPI) DeleteDesignations(ctx context.Context, ids []string) error {
	body := dto.DeleteBulkDesignationsRequest{IDs: ids}
	return c.client.Post(ctx, "/api/v1/designation/deleteDesignations", body, nil)
}

// decodeKeyedList decodifica un listado admitiendo la clave propia del
// recurso además de las formas genéricas.
func decodeKeyedList[B any](raw json.RawMessage, key string) ([]B, error) {
	env, err := mapper.DecodeList(raw, key)
	if err != nil {
		return nil, err
	}
	return mapper.DecodeItems[B](env)
}

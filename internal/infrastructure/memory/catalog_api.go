package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

var _ ports.CatalogAPI = (*CatalogAPI)(nil)

// CatalogAPI fachada mock de roles y designaciones. Respeta el contrato bulk
// del backend: create devuelve los creados, update y delete no devuelven nada.
type CatalogAPI struct {
	store *Store
}

// NewCatalogAPI construye la fachada sobre el store compartido.
func NewCatalogAPI(store *Store) *CatalogAPI {
	return &CatalogAPI{store: store}
}

// ─────────────────────────────────────────────────────────────
// Roles
// ─────────────────────────────────────────────────────────────

// GetRolesByProject devuelve los roles del proyecto.
func (c *CatalogAPI) GetRolesByProject(_ context.Context, projectID string) ([]entity.Role, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	roles := make([]entity.Role, 0)
	for _, r := range c.store.roles {
		if r.ProjectID == projectID {
			roles = append(roles, r)
		}
	}
	return roles, nil
}

// GetRoleByName busca un rol por nombre dentro del proyecto.
func (c *CatalogAPI) GetRoleByName(_ context.Context, projectID, roleName string) (entity.Role, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	for _, r := range c.store.roles {
		if r.ProjectID == projectID && r.RoleName == roleName {
			return r, nil
		}
	}
	return entity.Role{}, fmt.Errorf("rol %q: %w", roleName, domain.ErrNotFound)
}

// CreateRoles crea los roles pedidos y devuelve los creados en el mismo orden.
func (c *CatalogAPI) CreateRoles(_ context.Context, roles []dto.CreateRoleRequest) ([]entity.Role, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("se requiere al menos un rol: %w", domain.ErrInvalidInput)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	created := make([]entity.Role, 0, len(roles))
	for _, in := range roles {
		if in.ProjectID == "" || in.RoleName == "" {
			return nil, fmt.Errorf("projectId y roleName son obligatorios: %w", domain.ErrInvalidInput)
		}
		role := entity.Role{
			ID:        uuid.NewString(),
			ProjectID: in.ProjectID,
			RoleName:  in.RoleName,
			Level:     in.Level,
			IsActive:  in.IsActive == nil || *in.IsActive,
			CreatedAt: now,
		}
		c.store.roles = append(c.store.roles, role)
		created = append(created, role)
	}
	return created, nil
}

// UpdateRoles aplica las actualizaciones en bloque. Ids desconocidos fallan
// con not-found sin aplicar a medias: se valida todo el lote primero.
func (c *CatalogAPI) UpdateRoles(_ context.Context, roles []dto.UpdateRoleRequest) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	indexByID := make(map[string]int, len(c.store.roles))
	for i, r := range c.store.roles {
		indexByID[r.ID] = i
	}
	for _, in := range roles {
		if _, ok := indexByID[in.ID]; !ok {
			return fmt.Errorf("rol %s: %w", in.ID, domain.ErrNotFound)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, in := range roles {
		role := &c.store.roles[indexByID[in.ID]]
		if in.RoleName != "" {
			role.RoleName = in.RoleName
		}
		if in.Level != 0 {
			role.Level = in.Level
		}
		if in.IsActive != nil {
			role.IsActive = *in.IsActive
		}
		role.UpdatedAt = now
	}
	return nil
}

// DeleteRoles borra en bloque; cualquier id desconocido aborta el lote.
func (c *CatalogAPI) DeleteRoles(_ context.Context, ids []string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	keep := make([]entity.Role, 0, len(c.store.roles))
	toDelete := make(map[string]bool, len(ids))
	for _, id := range ids {
		toDelete[id] = false
	}
	for _, r := range c.store.roles {
		if _, ok := toDelete[r.ID]; ok {
			toDelete[r.ID] = true
			continue
		}
		keep = append(keep, r)
	}
	for id, found := range toDelete {
		if !found {
			return fmt.Errorf("rol %s: %w", id, domain.ErrNotFound)
		}
	}
	c.store.roles = keep
	return nil
}

// ─────────────────────────────────────────────────────────────
// Designaciones
// ─────────────────────────────────────────────────────────────

// GetDesignationsByProject devuelve las designaciones del proyecto con el
// roleName resuelto desde el rol vigente.
func (c *CatalogAPI) GetDesignationsByProject(_ context.Context, projectID string) ([]entity.Designation, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	designations := make([]entity.Designation, 0)
	for _, d := range c.store.designations {
		if d.ProjectID != projectID {
			continue
		}
		d.RoleName = c.roleNameLocked(d.RoleID)
		designations = append(designations, d)
	}
	return designations, nil
}

// GetDesignationByName busca una designación por nombre dentro del proyecto.
func (c *CatalogAPI) GetDesignationByName(_ context.Context, projectID, name string) (entity.Designation, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	for _, d := range c.store.designations {
		if d.ProjectID == projectID && d.Name == name {
			d.RoleName = c.roleNameLocked(d.RoleID)
			return d, nil
		}
	}
	return entity.Designation{}, fmt.Errorf("designación %q: %w", name, domain.ErrNotFound)
}

// CreateDesignations crea designaciones en bloque.
func (c *CatalogAPI) CreateDesignations(_ context.Context, designations []dto.CreateDesignationRequest) ([]entity.Designation, error) {
	if len(designations) == 0 {
		return nil, fmt.Errorf("se requiere al menos una designación: %w", domain.ErrInvalidInput)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	created := make([]entity.Designation, 0, len(designations))
	for _, in := range designations {
		if in.ProjectID == "" || in.Name == "" {
			return nil, fmt.Errorf("projectId y name son obligatorios: %w", domain.ErrInvalidInput)
		}
		access := entity.Access(in.Access)
		if access == "" {
			access = entity.AccessBoth
		}
		permissions := in.Permissions
		if permissions == nil {
			permissions = []string{}
		}
		d := entity.Designation{
			ID:          uuid.NewString(),
			ProjectID:   in.ProjectID,
			Name:        in.Name,
			RoleID:      in.RoleID,
			RoleName:    c.roleNameLocked(in.RoleID),
			Permissions: permissions,
			Access:      access,
			IsActive:    in.IsActive == nil || *in.IsActive,
			CreatedAt:   now,
		}
		c.store.designations = append(c.store.designations, d)
		created = append(created, d)
	}
	return created, nil
}

// UpdateDesignations aplica las actualizaciones en bloque tras validar el lote.
func (c *CatalogAPI) UpdateDesignations(_ context.Context, designations []dto.UpdateDesignationRequest) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	indexByID := make(map[string]int, len(c.store.designations))
	for i, d := range c.store.designations {
		indexByID[d.ID] = i
	}
	for _, in := range designations {
		if _, ok := indexByID[in.ID]; !ok {
			return fmt.Errorf("designación %s: %w", in.ID, domain.ErrNotFound)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, in := range designations {
		d := &c.store.designations[indexByID[in.ID]]
		if in.Name != "" {
			d.Name = in.Name
		}
		if in.RoleID != "" {
			d.RoleID = in.RoleID
			d.RoleName = c.roleNameLocked(in.RoleID)
		}
		if in.Permissions != nil {
			d.Permissions = in.Permissions
		}
		if in.Access != "" {
			d.Access = entity.Access(in.Access)
		}
		if in.IsActive != nil {
			d.IsActive = *in.IsActive
		}
		d.UpdatedAt = now
	}
	return nil
}

// DeleteDesignations borra en bloque; cualquier id desconocido aborta el lote.
func (c *CatalogAPI) DeleteDesignations(_ context.Context, ids []string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	keep := make([]entity.Designation, 0, len(c.store.designations))
	toDelete := make(map[string]bool, len(ids))
	for _, id := range ids {
		toDelete[id] = false
	}
	for _, d := range c.store.designations {
		if _, ok := toDelete[d.ID]; ok {
			toDelete[d.ID] = true
			continue
		}
		keep = append(keep, d)
	}
	for id, found := range toDelete {
		if !found {
			return fmt.Errorf("designación %s: %w", id, domain.ErrNotFound)
		}
	}
	c.store.designations = keep
	return nil
}

// roleNameLocked resuelve el nombre del rol por id; vacío si no existe.
func (c *CatalogAPI) roleNameLocked(roleID string) string {
	for _, r := range c.store.roles {
		if r.ID == roleID {
			return r.RoleName
		}
	}
	return ""
}

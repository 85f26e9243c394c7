package ports

import (
	"context"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// CatalogAPI operaciones de roles y designaciones de un proyecto.
//
// El backend las expone como endpoints bulk: create devuelve el array creado;
// update y delete son fire-and-forget y el llamador debe re-consultar para
// observar el efecto.
type CatalogAPI interface {
	// Roles
	GetRolesByProject(ctx context.Context, projectID string) ([]entity.Role, error)
	GetRoleByName(ctx context.Context, projectID, roleName string) (entity.Role, error)
	CreateRoles(ctx context.Context, roles []dto.CreateRoleRequest) ([]entity.Role, error)
	UpdateRoles(ctx context.Context, roles []dto.UpdateRoleRequest) error
	DeleteRoles(ctx context.Context, ids []string) error

	// Designaciones
	GetDesignationsByProject(ctx context.Context, projectID string) ([]entity.Designation, error)
	GetDesignationByName(ctx context.Context, projectID, name string) (entity.Designation, error)
	CreateDesignations(ctx context.Context, designations []dto.CreateDesignationRequest) ([]entity.Designation, error)
	UpdateDesignations(ctx context.Context, designations []dto.UpdateDesignationRequest) error
	DeleteDesignations(ctx context.Context, ids []string) error
}

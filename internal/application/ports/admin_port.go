// Package ports define los contratos de las fachadas de API de la consola.
// Cada contrato es independiente de su implementación: la fachada real
// (internal/infrastructure/rest) y la mock (internal/infrastructure/memory)
// son intercambiables sin tocar a ningún llamador; la selección se hace por
// inyección de constructor en cmd/console.
package ports

import (
	"context"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// AdminAPI operaciones de administración de cuentas, proyectos y usuarios.
//
// Los listados aceptan un ListQuery opcional (zero value = defaults) y
// normalizan cualquier forma de respuesta del backend a Paginated.
// ListProjects direcciona por accountCode legible: la implementación real
// resuelve primero code->id (dos viajes); si la cuenta no existe, el segundo
// viaje nunca se emite.
type AdminAPI interface {
	// Cuentas
	ListAccounts(ctx context.Context, q dto.ListQuery) (entity.Paginated[entity.Account], error)
	GetAccount(ctx context.Context, accountID string) (entity.Account, error)
	GetAccountByCode(ctx context.Context, accountCode string) (entity.Account, error)
	CreateAccount(ctx context.Context, in dto.CreateAccountRequest) (entity.Account, error)
	UpdateAccount(ctx context.Context, accountID string, in dto.UpdateAccountRequest) (entity.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error

	// Proyectos
	ListProjects(ctx context.Context, accountCode string, q dto.ListQuery) (entity.Paginated[entity.Project], error)
	GetProject(ctx context.Context, projectID string) (entity.Project, error)
	GetProjectByCode(ctx context.Context, projectCode string) (entity.Project, error)
	CreateProject(ctx context.Context, in dto.CreateProjectRequest) (entity.Project, error)
	UpdateProject(ctx context.Context, projectID string, in dto.UpdateProjectRequest) (entity.Project, error)
	DeleteProject(ctx context.Context, projectID string) error

	// Usuarios (alcance actual: solo listado)
	ListUsers(ctx context.Context, accountCode, projectCode string, q dto.ListQuery) (entity.Paginated[entity.User], error)
}

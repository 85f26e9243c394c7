package mapper

import (
	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// Designation mapea BackendDesignation al modelo del frontend.
// permissions ausente se convierte en slice vacío y access ausente en BOTH.
func Designation(b dto.BackendDesignation) entity.Designation {
	permissions := b.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	access := entity.Access(b.Access)
	if access == "" {
		access = entity.AccessBoth
	}
	return entity.Designation{
		ID:          firstNonEmpty(b.ID, b.MongoID),
		ProjectID:   b.ProjectID,
		Name:        b.Name,
		RoleID:      b.RoleID,
		RoleName:    b.RoleName,
		Permissions: permissions,
		Access:      access,
		IsActive:    boolOrTrue(b.IsActive),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

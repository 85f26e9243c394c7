package mapper

import (
	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// Role mapea BackendRole al modelo del frontend.
// isActive ausente se interpreta como activo.
func Role(b dto.BackendRole) entity.Role {
	return entity.Role{
		ID:        firstNonEmpty(b.ID, b.MongoID),
		ProjectID: b.ProjectID,
		RoleName:  b.RoleName,
		Level:     b.Level,
		IsActive:  boolOrTrue(b.IsActive),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func boolOrTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

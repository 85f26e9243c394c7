package dto

// BackendRole rol tal y como lo reporta el backend.
// IsActive viaja como puntero: ausente significa activo.
type BackendRole struct {
	ID        string `json:"id,omitempty"`
	MongoID   string `json:"_id,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	RoleName  string `json:"roleName,omitempty"`
	Level     int    `json:"level,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// CreateRoleRequest DTO de creación de un rol.
type CreateRoleRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
	RoleName  string `json:"roleName" validate:"required,min=2"`
	Level     int    `json:"level" validate:"required,min=1,max=100"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// UpdateRoleRequest DTO de actualización de un rol existente.
type UpdateRoleRequest struct {
	ID       string `json:"id" validate:"required"`
	RoleName string `json:"roleName,omitempty" validate:"omitempty,min=2"`
	Level    int    `json:"level,omitempty" validate:"omitempty,min=1,max=100"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// Los endpoints de roles del backend son bulk: siempre envuelven arrays.
type (
	CreateBulkRolesRequest struct {
		Roles []CreateRoleRequest `json:"roles" validate:"required,min=1,dive"`
	}
	UpdateBulkRolesRequest struct {
		Roles []UpdateRoleRequest `json:"roles" validate:"required,min=1,dive"`
	}
	DeleteBulkRolesRequest struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}
)

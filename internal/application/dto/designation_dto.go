package dto

// BackendDesignation designación tal y como la reporta el backend.
type BackendDesignation struct {
	ID          string   `json:"id,omitempty"`
	MongoID     string   `json:"_id,omitempty"`
	ProjectID   string   `json:"projectId,omitempty"`
	Name        string   `json:"name,omitempty"`
	RoleID      string   `json:"roleId,omitempty"`
	RoleName    string   `json:"roleName,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Access      string   `json:"access,omitempty"` // WEB | MOBILE | BOTH
	IsActive    *bool    `json:"isActive,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// CreateDesignationRequest DTO de creación de una designación.
type CreateDesignationRequest struct {
	ProjectID   string   `json:"projectId" validate:"required"`
	Name        string   `json:"name" validate:"required,min=2"`
	RoleID      string   `json:"roleId" validate:"required"`
	Permissions []string `json:"permissions,omitempty"`
	Access      string   `json:"access,omitempty" validate:"omitempty,oneof=WEB MOBILE BOTH"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// UpdateDesignationRequest DTO de actualización de una designación existente.
type UpdateDesignationRequest struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name,omitempty" validate:"omitempty,min=2"`
	RoleID      string   `json:"roleId,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Access      string   `json:"access,omitempty" validate:"omitempty,oneof=WEB MOBILE BOTH"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// Envolturas bulk de los endpoints de designaciones.
type (
	CreateBulkDesignationsRequest struct {
		Designations []CreateDesignationRequest `json:"designations" validate:"required,min=1,dive"`
	}
	UpdateBulkDesignationsRequest struct {
		Designations []UpdateDesignationRequest `json:"designations" validate:"required,min=1,dive"`
	}
	DeleteBulkDesignationsRequest struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}
)

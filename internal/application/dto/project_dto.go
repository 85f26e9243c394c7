package dto

// BackendProject proyecto tal y como lo reporta el backend.
// Mismas ambigüedades de forma que BackendAccount (id/_id, projectName/name).
type BackendProject struct {
	ID          string `json:"id,omitempty"`
	MongoID     string `json:"_id,omitempty"`
	AccountID   string `json:"accountId,omitempty"`
	ProjectCode string `json:"projectCode,omitempty"`
	Code        string `json:"code,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Status      string `json:"status,omitempty"` // ACTIVE | INACTIVE
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// CreateProjectRequest DTO de creación. AccountID es el id opaco del backend,
// no el código de negocio; el llamador lo resuelve antes (ver fachada Admin).
type CreateProjectRequest struct {
	AccountID   string `json:"accountId" validate:"required"`
	ProjectName string `json:"projectName" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateProjectRequest DTO de actualización parcial.
type UpdateProjectRequest struct {
	ProjectName string `json:"projectName,omitempty" validate:"omitempty,min=2"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

package dto

// BackendAccount cuenta tal y como la reporta el backend. Las convenciones
// varían según el servicio de origen: id vs _id (Mongo), accountName vs name,
// accountCode vs code. El mapper resuelve los fallbacks; nada de esto cruza
// la frontera hacia el modelo del frontend.
type BackendAccount struct {
	ID                  string `json:"id,omitempty"`
	MongoID             string `json:"_id,omitempty"`
	AccountCode         string `json:"accountCode,omitempty"`
	Code                string `json:"code,omitempty"`
	AccountName         string `json:"accountName,omitempty"`
	Name                string `json:"name,omitempty"`
	Email               string `json:"email,omitempty"`
	ProjectsActiveCount int    `json:"projectsActiveCount,omitempty"`
	Status              string `json:"status,omitempty"` // ACTIVE | INACTIVE
	CreatedAt           string `json:"createdAt,omitempty"`
	UpdatedAt           string `json:"updatedAt,omitempty"`
}

// CreateAccountRequest DTO de creación: solo los campos mutables.
type CreateAccountRequest struct {
	AccountName string `json:"accountName" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateAccountRequest DTO de actualización parcial.
type UpdateAccountRequest struct {
	AccountName string `json:"accountName,omitempty" validate:"omitempty,min=2"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

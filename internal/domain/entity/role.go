package entity

// Role rol de un proyecto. Level va de 1 a 100; menor = mayor autoridad.
type Role struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	RoleName  string `json:"roleName"`
	Level     int    `json:"level"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

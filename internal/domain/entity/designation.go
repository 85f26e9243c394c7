package entity

// Designation designación (cargo) de un proyecto, ligada a un Role.
type Designation struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"projectId"`
	Name        string   `json:"name"`
	RoleID      string   `json:"roleId"`
	RoleName    string   `json:"roleName,omitempty"`
	Permissions []string `json:"permissions"`
	Access      Access   `json:"access"` // WEB | MOBILE | BOTH
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

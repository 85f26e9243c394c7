package entity

// Account cuenta organizacional (tenant raíz del sistema).
// El campo Code es el identificador de negocio: inmutable una vez emitido
// y usado como llave de unión externa hacia los proyectos.
type Account struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Code                string `json:"code"`
	PrimaryAdminName    string `json:"primaryAdminName"`
	PrimaryAdminEmail   string `json:"primaryAdminEmail"`
	ProjectsActiveCount int    `json:"projectsActiveCount"`
	Status              Status `json:"status"` // Active | Inactive
	CreatedAtIso        string `json:"createdAtIso"`
}

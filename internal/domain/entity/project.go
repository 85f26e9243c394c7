package entity

// Project proyecto dentro de una cuenta. Code es único dentro de la cuenta.
type Project struct {
	ID                string   `json:"id"`
	AccountCode       string   `json:"accountCode"`
	Name              string   `json:"name"`
	Code              string   `json:"code"`
	RegionLabel       string   `json:"regionLabel,omitempty"`
	ProjectAdminName  string   `json:"projectAdminName"`
	ProjectAdminEmail string   `json:"projectAdminEmail"`
	ModulesActive     []string `json:"modulesActive"`
	Status            Status   `json:"status"` // Active | Inactive
}

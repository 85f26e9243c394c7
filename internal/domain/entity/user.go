package entity

// User usuario operativo de un proyecto (alcance actual: solo listados).
type User struct {
	ID                  string `json:"id"`
	AccountCode         string `json:"accountCode"`
	ProjectCode         string `json:"projectCode"`
	Name                string `json:"name"`
	EmployeeCode        string `json:"employeeCode"`
	Email               string `json:"email"`
	Designation         string `json:"designation"`
	SystemRole          string `json:"systemRole"`
	AssignedStoresLabel string `json:"assignedStoresLabel"`
	Status              Status `json:"status"` // Active | Inactive | Onboarding
}

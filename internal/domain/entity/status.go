package entity

// Status estado normalizado de una entidad en el modelo del frontend.
// Los backends reportan ACTIVE/INACTIVE; el mapper los traduce a estos valores.
type Status string

const (
	StatusActive     Status = "Active"
	StatusInactive   Status = "Inactive"
	StatusOnboarding Status = "Onboarding" // solo aplica a usuarios
)

// Access canal de acceso de una designación.
type Access string

const (
	AccessWeb    Access = "WEB"
	AccessMobile Access = "MOBILE"
	AccessBoth   Access = "BOTH"
)

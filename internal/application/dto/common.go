package dto

import "strings"

// Defaults de paginación de los listados de la consola.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// StatusAll valor centinela del filtro de estado: no filtra nada.
const StatusAll = "All"

// ListQuery parámetros comunes de los listados.
type ListQuery struct {
	Q        string `query:"q"`
	Status   string `query:"status"` // All | Active | Inactive (| Onboarding para usuarios)
	Page     int    `query:"page" validate:"min=0"`
	PageSize int    `query:"pageSize" validate:"min=0,max=100"`
}

// Normalize aplica los defaults: page=1 y pageSize=10 si vienen vacíos o no
// positivos, status=All si viene vacío, y recorta espacios del texto de búsqueda.
func (q ListQuery) Normalize() ListQuery {
	out := q
	out.Q = strings.TrimSpace(q.Q)
	if out.Status == "" {
		out.Status = StatusAll
	}
	if out.Page <= 0 {
		out.Page = 1
	}
	if out.PageSize <= 0 {
		out.PageSize = DefaultPageSize
	}
	if out.PageSize > MaxPageSize {
		out.PageSize = MaxPageSize
	}
	return out
}

// ErrorResponse cuerpo de error estructurado que declara el backend
// (y que el gateway reutiliza para sus propias respuestas).
type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

package ports

import (
	"context"

	"github.com/infield-hq/infield-console/internal/application/dto"
)

// ChatAPI panel del agente de IA. La continuidad de la conversación vive en
// la implementación (estado inyectado por constructor, no singleton de
// módulo): SendMessage adjunta el sessionId vigente y adopta el que el
// agente devuelva.
type ChatAPI interface {
	SendMessage(ctx context.Context, message, currentPage string) (dto.ChatResponse, error)
	Status(ctx context.Context) (dto.AgentStatus, error)
	// ClearSession borra la sesión del lado del agente; los errores remotos se
	// ignoran y la sesión local queda limpia de todos modos.
	ClearSession(ctx context.Context) error
	NewSession()
	SessionID() string
}

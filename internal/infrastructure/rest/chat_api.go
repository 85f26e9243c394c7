package rest

import (
	"context"
	"net/url"
	"sync"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/ports"
)

var _ ports.ChatAPI = (*ChatAPI)(nil)

// ChatAPI fachada real del agente de IA. El sessionId vigente vive aquí,
// protegido por mutex: la continuidad conversacional es estado de la
// instancia, no del proceso.
type ChatAPI struct {
	client *Client

	mu        sync.Mutex
	sessionID string
}

// NewChatAPI construye la fachada sin sesión activa.
func NewChatAPI(client *Client) *ChatAPI {
	return &ChatAPI{client: client}
}

// SendMessage envía el mensaje adjuntando la sesión vigente y la página
// actual como contexto. Adopta el sessionId que devuelva el agente.
func (c *ChatAPI) SendMessage(ctx context.Context, message, currentPage string) (dto.ChatResponse, error) {
	c.mu.Lock()
	req := dto.ChatRequest{
		Message:     message,
		SessionID:   c.sessionID,
		CurrentPage: currentPage,
	}
	c.mu.Unlock()

	var resp dto.ChatResponse
	if err := c.client.Post(ctx, "/api/v1/ai/chat", req, &resp); err != nil {
		return dto.ChatResponse{}, err
	}

	if resp.SessionID != "" {
		c.mu.Lock()
		c.sessionID = resp.SessionID
		c.mu.Unlock()
	}
	return resp, nil
}

// Status consulta la disponibilidad del agente.
func (c *ChatAPI) Status(ctx context.Context) (dto.AgentStatus, error) {
	var status dto.AgentStatus
	if err := c.client.Post(ctx, "/api/v1/ai/status", nil, &status); err != nil {
		return dto.AgentStatus{}, err
	}
	return status, nil
}

// ClearSession borra la sesión remota si existe y siempre limpia la local.
// El error remoto se ignora: una sesión huérfana en el agente expira sola.
func (c *ChatAPI) ClearSession(ctx context.Context) error {
	c.mu.Lock()
	sessionID := c.sessionID
	c.sessionID = ""
	c.mu.Unlock()

	if sessionID == "" {
		return nil
	}
	_ = c.client.Delete(ctx, "/api/v1/ai/session/"+url.PathEscape(sessionID), nil)
	return nil
}

// NewSession descarta la sesión local; la próxima SendMessage abrirá una.
func (c *ChatAPI) NewSession() {
	c.mu.Lock()
	c.sessionID = ""
	c.mu.Unlock()
}

// SessionID devuelve la sesión vigente, vacía si aún no hay conversación.
func (c *ChatAPI) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

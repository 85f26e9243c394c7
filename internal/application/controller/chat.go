package controller

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// ChatController transcript del panel del agente de IA. La continuidad de la
// sesión vive en la fachada; aquí solo se acumulan los mensajes mostrados.
type ChatController struct {
	api ports.ChatAPI

	mu          sync.RWMutex
	messages    []entity.ChatMessage
	currentPage string
	sending     bool
}

// NewChatController arranca con el transcript vacío.
func NewChatController(api ports.ChatAPI) *ChatController {
	return &ChatController{api: api}
}

// SetCurrentPage fija la página que mira el administrador; viaja como
// contexto en cada mensaje.
func (c *ChatController) SetCurrentPage(page string) {
	c.mu.Lock()
	c.currentPage = page
	c.mu.Unlock()
}

// Send agrega el mensaje del usuario al transcript, consulta al agente y
// agrega la respuesta. En fallo el mensaje del usuario se conserva con una
// respuesta de error inline, como hace el panel.
func (c *ChatController) Send(ctx context.Context, message string) (dto.ChatResponse, error) {
	now := time.Now().UTC()
	c.mu.Lock()
	c.sending = true
	currentPage := c.currentPage
	c.messages = append(c.messages, entity.ChatMessage{
		ID:        uuid.NewString(),
		Role:      entity.ChatRoleUser,
		Content:   message,
		Timestamp: now,
	})
	c.mu.Unlock()

	resp, err := c.api.SendMessage(ctx, message, currentPage)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sending = false
	if err != nil {
		c.messages = append(c.messages, entity.ChatMessage{
			ID:        uuid.NewString(),
			Role:      entity.ChatRoleAssistant,
			Content:   ErrorMessage(err),
			Timestamp: time.Now().UTC(),
		})
		return dto.ChatResponse{}, err
	}

	actions := make([]entity.AgentAction, 0, len(resp.Actions))
	for _, a := range resp.Actions {
		actions = append(actions, entity.AgentAction{
			Type:       a.Type,
			EntityID:   a.EntityID,
			EntityCode: a.EntityCode,
			Details:    a.Details,
		})
	}
	c.messages = append(c.messages, entity.ChatMessage{
		ID:        uuid.NewString(),
		Role:      entity.ChatRoleAssistant,
		Content:   resp.Response,
		Timestamp: time.Now().UTC(),
		Actions:   actions,
	})
	return resp, nil
}

// Status consulta la disponibilidad del agente.
func (c *ChatController) Status(ctx context.Context) (dto.AgentStatus, error) {
	return c.api.Status(ctx)
}

// Reset limpia el transcript y cierra la sesión del agente.
func (c *ChatController) Reset(ctx context.Context) error {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
	return c.api.ClearSession(ctx)
}

// Transcript devuelve una copia de los mensajes acumulados.
func (c *ChatController) Transcript() []entity.ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Sending indica si hay un mensaje en vuelo.
func (c *ChatController) Sending() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sending
}

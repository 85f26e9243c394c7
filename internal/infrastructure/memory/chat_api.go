package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

var _ ports.ChatAPI = (*ChatAPI)(nil)

// ChatAPI agente de IA simulado para el modo demo: siempre disponible,
// respuestas enlatadas conscientes de la página actual y continuidad de
// sesión con ids locales.
type ChatAPI struct {
	store *Store

	mu        sync.Mutex
	sessionID string
}

// NewChatAPI construye el agente demo sin sesión activa.
func NewChatAPI(store *Store) *ChatAPI {
	return &ChatAPI{store: store}
}

// SendMessage responde de forma determinista según la página y el contenido
// del mensaje, abriendo sesión si no había una.
func (c *ChatAPI) SendMessage(_ context.Context, message, currentPage string) (dto.ChatResponse, error) {
	c.mu.Lock()
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	sessionID := c.sessionID
	c.mu.Unlock()

	return dto.ChatResponse{
		Response:    c.reply(message, currentPage),
		SessionID:   sessionID,
		Suggestions: suggestionsFor(currentPage),
	}, nil
}

func (c *ChatAPI) reply(message, currentPage string) string {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "cuántas cuentas") || strings.Contains(lower, "cuantas cuentas") {
		c.store.mu.RLock()
		total := len(c.store.accounts)
		active := 0
		for _, acc := range c.store.accounts {
			if acc.Status == entity.StatusActive {
				active++
			}
		}
		c.store.mu.RUnlock()
		return fmt.Sprintf("Hay %d cuentas registradas, %d de ellas activas.", total, active)
	}

	switch currentPage {
	case "accounts":
		return "Estás en el listado de cuentas. Puedo buscar por nombre o código, o contarte el estado de una cuenta concreta."
	case "projects":
		return "Estás en los proyectos de una cuenta. Pregúntame por un proyecto o por sus módulos activos."
	case "roles":
		return "Estás en el catálogo de roles y designaciones. Puedo explicarte los niveles o listar los roles del proyecto."
	default:
		return "Soy el asistente de la consola en modo demo. Pregúntame por cuentas, proyectos o roles."
	}
}

func suggestionsFor(currentPage string) []string {
	switch currentPage {
	case "accounts":
		return []string{"¿Cuántas cuentas activas hay?", "Busca la cuenta Acme"}
	case "projects":
		return []string{"¿Qué módulos tiene Planta Norte?"}
	case "roles":
		return []string{"Lista los roles del proyecto"}
	default:
		return []string{"¿Cuántas cuentas activas hay?"}
	}
}

// Status el agente demo siempre está disponible.
func (c *ChatAPI) Status(_ context.Context) (dto.AgentStatus, error) {
	return dto.AgentStatus{Available: true, Message: "agente demo operativo"}, nil
}

// ClearSession descarta la sesión local; no hay lado remoto.
func (c *ChatAPI) ClearSession(_ context.Context) error {
	c.NewSession()
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

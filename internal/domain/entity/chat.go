package entity

import "time"

// Roles de un mensaje en la conversación con el agente.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// AgentAction acción ejecutada (o propuesta) por el agente de IA.
type AgentAction struct {
	Type       string         `json:"type"`
	EntityID   string         `json:"entityId,omitempty"`
	EntityCode string         `json:"entityCode,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// ChatMessage mensaje del panel de chat con el agente.
type ChatMessage struct {
	ID        string        `json:"id"`
	Role      string        `json:"role"` // user | assistant
	Content   string        `json:"content"`
	Timestamp time.Time     `json:"timestamp"`
	Actions   []AgentAction `json:"actions,omitempty"`
}

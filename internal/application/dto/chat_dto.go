package dto

// ChatRequest petición al agente de IA. SessionID vacío inicia una conversación.
// CurrentPage da contexto al agente sobre la pantalla que mira el administrador.
type ChatRequest struct {
	Message     string `json:"message" validate:"required"`
	SessionID   string `json:"sessionId,omitempty"`
	CurrentPage string `json:"currentPage,omitempty"`
}

// AgentActionDTO acción declarada por el agente en la respuesta.
type AgentActionDTO struct {
	Type       string         `json:"type"`
	EntityID   string         `json:"entityId,omitempty"`
	EntityCode string         `json:"entityCode,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// ConfirmationRequired acción que el agente no ejecuta sin confirmación explícita.
type ConfirmationRequired struct {
	Action   string `json:"action"`
	EntityID string `json:"entityId"`
	Message  string `json:"message"`
}

// ChatResponse respuesta del agente de IA.
type ChatResponse struct {
	Response             string                `json:"response"`
	SessionID            string                `json:"sessionId"`
	Actions              []AgentActionDTO      `json:"actions,omitempty"`
	Suggestions          []string              `json:"suggestions,omitempty"`
	ConfirmationRequired *ConfirmationRequired `json:"confirmationRequired,omitempty"`
}

// AgentStatus disponibilidad del agente de IA.
type AgentStatus struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

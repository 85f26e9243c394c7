package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infield-hq/infield-console/internal/application/controller"
	"github.com/infield-hq/infield-console/internal/application/dto"
)

// AIHandler maneja el panel del agente de IA de la consola.
type AIHandler struct {
	ctrl *controller.ChatController
}

// NewAIHandler construye el handler inyectando el controlador de chat.
func NewAIHandler(ctrl *controller.ChatController) *AIHandler {
	return &AIHandler{ctrl: ctrl}
}

// Chat godoc
// @Summary      Enviar un mensaje al agente de IA
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Mensaje y contexto de página"
// @Success      200   {object}  dto.ChatResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /console/ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "VALIDATION", Message: "message es requerido"})
	}
	h.ctrl.SetCurrentPage(in.CurrentPage)
	resp, err := h.ctrl.Send(c.Context(), in.Message)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Status godoc
// @Summary      Disponibilidad del agente de IA
// @Tags         ai
// @Produce      json
// @Success      200  {object}  dto.AgentStatus
// @Router       /console/ai/status [get]
func (h *AIHandler) Status(c *fiber.Ctx) error {
	status, err := h.ctrl.Status(c.Context())
	if err != nil {
		// El panel trata el fallo como "no disponible", no como error duro.
		return c.JSON(dto.AgentStatus{Available: false, Message: controller.ErrorMessage(err)})
	}
	return c.JSON(status)
}

// Transcript godoc
// @Summary      Transcript de la conversación vigente
// @Tags         ai
// @Produce      json
// @Success      200  {array}  entity.ChatMessage
// @Router       /console/ai/transcript [get]
func (h *AIHandler) Transcript(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.Transcript())
}

// Reset godoc
// @Summary      Cerrar la sesión del agente y limpiar el transcript
// @Tags         ai
// @Produce      json
// @Success      204
// @Router       /console/ai/session [delete]
func (h *AIHandler) Reset(c *fiber.Ctx) error {
	_ = h.ctrl.Reset(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

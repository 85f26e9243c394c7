// Package controller implementa los controladores de página de la consola:
// el estado de carga, filtros y paginación de cada pantalla, y el flujo de
// mutación (validar, enviar, refrescar en éxito, conservar estado en fallo).
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/infield-hq/infield-console/internal/domain"
)

// Phase fase de carga de una pantalla.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// validate instancia compartida; es segura para uso concurrente y cachea los
// metadatos de struct entre llamadas.
var validate = validator.New()

// Mensaje genérico cuando el error no trae uno presentable.
const genericErrorMessage = "Algo salió mal. Inténtalo de nuevo."

// ErrorMessage extrae el mensaje presentable de un error: el que declaró el
// backend si viene en la cadena, mensajes fijos para los errores de dominio
// conocidos, y el genérico para todo lo demás.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var withMessage interface{ UserMessage() string }
	if errors.As(err, &withMessage) && withMessage.UserMessage() != "" {
		return withMessage.UserMessage()
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "El recurso solicitado no existe."
	case errors.Is(err, domain.ErrUnauthorized):
		return "Credenciales inválidas."
	case errors.Is(err, domain.ErrInvalidInput):
		return "Revisa los datos ingresados."
	default:
		return genericErrorMessage
	}
}

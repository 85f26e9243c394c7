package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain"
	"github.com/infield-hq/infield-console/internal/infrastructure/rest"
)

// writeError traduce un error a la respuesta JSON de la consola. Los errores
// estructurados del backend pasan con su status y código originales; los de
// dominio se mapean a códigos propios; el resto es un 500 genérico.
func writeError(c *fiber.Ctx, err error) error {
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{
			ErrorCode: apiErr.ErrorCode,
			Message:   apiErr.Message,
			RequestID: apiErr.RequestID,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{ErrorCode: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownListShape):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{ErrorCode: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{ErrorCode: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{ErrorCode: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{ErrorCode: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{ErrorCode: "INTERNAL", Message: "error interno"})
	}
}

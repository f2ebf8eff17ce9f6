package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain"
)

// writeError traduce errores de dominio a respuestas HTTP.
//
//   - *domain.ValidationError     → 422 VALIDATION (con field)
//   - domain.ErrItemNotFound      → 404 ITEM_NOT_FOUND
//   - domain.ErrNotFound          → 404 NOT_FOUND
//   - domain.ErrUnsupportedFormat → 400 UNSUPPORTED_FORMAT
//   - domain.ErrInvalidInput      → 400 VALIDATION
//   - cualquier otro              → 500 INTERNAL (se registra)
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message, Field: verr.Field})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "ítem no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador no encontrado"})
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

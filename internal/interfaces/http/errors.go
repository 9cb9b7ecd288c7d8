package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
)

// hataYaniti alan hatalarını HTTP durum kodlarına çevirir. Mesaj her zaman
// hatanın kendisinden gelir; ihlal edilen kural ve çakışan değer oradadır.
func hataYaniti(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateSingleton),
		errors.Is(err, domain.ErrDuplicateUnitNumber),
		errors.Is(err, domain.ErrIncompleteUnit):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RULE_VIOLATION", Message: err.Error()})
	case errors.Is(err, domain.ErrCommitInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COMMIT_IN_FLIGHT", Message: err.Error()})
	case errors.Is(err, domain.ErrNegativeStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

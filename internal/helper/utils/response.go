package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kampuspmb/admin_service/internal/domain"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(data)
}

// ResponseDomainError maps the domain error taxonomy to HTTP statuses;
// anything outside the taxonomy is a 500 with a generic message.
func ResponseDomainError(ctx *fiber.Ctx, err error, notFoundMsg, duplicateMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ResponseError(ctx, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrDuplicate):
		return ResponseError(ctx, fiber.StatusBadRequest, duplicateMsg)
	default:
		return ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}

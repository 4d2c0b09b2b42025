package handler

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/stockroom/auth"
)

// respondError maps a rich error to its HTTP status and the shared error
// body. Errors without a code fall back to their category.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		switch {
		case rich.Code != 0:
			status = rich.Code
		default:
			status = categoryStatus(rich.Category)
		}
	}

	if status == fiber.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}

	return c.Status(status).JSON(auth.ErrorResponseBody(err))
}

func categoryStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return fiber.StatusUnauthorized
	case goerrors.CategoryNotFound:
		return fiber.StatusNotFound
	case goerrors.CategoryConflict:
		return fiber.StatusConflict
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondValidation(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error": fiber.Map{
			"message":   err.Error(),
			"text_code": "VALIDATION_ERROR",
		},
	})
}

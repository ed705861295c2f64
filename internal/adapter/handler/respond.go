package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

const unauthenticatedMessage = "Unauthenticated or token expired."

// writeError maps the error taxonomy onto HTTP statuses. Only unclassified
// errors reach the log.
func writeError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": ve.Message})
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": nf.Error()})
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials."})
	}
	log.Printf("internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": unauthenticatedMessage})
}

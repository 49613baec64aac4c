package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/postboard-server/internal/apperr"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(apperr.KindOf(err).HTTPStatus()).JSON(fiber.Map{"message": err.Error()})
		},
	})
}

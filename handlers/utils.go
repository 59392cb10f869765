package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, location string, data interface{}) error {
	c.Location(location)
	return c.Status(fiber.StatusCreated).JSON(data)
}

// errorBody is the JSON error shape: {"error":{"message":"..."}}
func errorBody(message string) fiber.Map {
	return fiber.Map{"error": fiber.Map{"message": message}}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorBody(message))
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(errorBody(message))
}

func plainText(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).SendString(message)
}

// bookmarkID parses the :id route parameter. ok is false for anything that
// cannot be a row id.
func bookmarkID(c *fiber.Ctx) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

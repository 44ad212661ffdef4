package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the JSON body of the song request surfaces.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK writes a success envelope.
func OK(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: message})
}

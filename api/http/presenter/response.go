package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error envelope: {"error": "<message>"}.
// Internal diagnostic detail stays server-side, only the message travels.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TextResponse wraps a complete (non-streamed) assistant reply.
type TextResponse struct {
	Text string `json:"text"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

func Text(c *fiber.Ctx, status int, text string) error {
	return JSON(c, status, TextResponse{Text: text})
}

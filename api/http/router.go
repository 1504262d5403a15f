package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/stockchat/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, chat *handlers.ChatHandler, items *handlers.ItemsHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")

	// The chat protocol endpoint sits directly under /api: its path and wire
	// format are a contract with the chat widget.
	api.Post("/chat", chat.Chat)

	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Catalog administration
	ig := v1.Group("/items")
	ig.Get("/", items.List)
	ig.Post("/", items.Create)
	ig.Get("/:code", items.Get)
	ig.Patch("/:code", items.Update)
	ig.Delete("/:code", items.Delete)
}

package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"crmapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers free of business logic; they only translate between the
// transport and the service envelopes.
func RegisterRoutes(app *fiber.App, db *sql.DB, customerSvc service.CustomerService, postSvc service.PostService) {
	// Health endpoints
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	customers := api.Group("/customers")
	customers.Get("/", ListCustomers(customerSvc))
	customers.Post("/", CreateCustomer(customerSvc))
	customers.Get("/:id", GetCustomer(customerSvc))
	customers.Put("/:id", UpdateCustomer(customerSvc))
	customers.Delete("/:id", DeleteCustomer(customerSvc))

	posts := api.Group("/posts")
	posts.Get("/", ListPosts(postSvc))
	posts.Post("/", CreatePost(postSvc))
	posts.Post("/batch", CreatePostBatch(postSvc))
	posts.Get("/:id", GetPost(postSvc))
	posts.Put("/:id", UpdatePost(postSvc))
	posts.Delete("/:id", DeletePost(postSvc))
}

// HealthCheck returns a handler that checks DB connectivity only.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe returns a simple liveness handler.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

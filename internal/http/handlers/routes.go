package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	applog "shopcore/internal/log"
)

// Register mounts the full API surface. Login routes are throttled; everything
// else rides the global middleware chain.
func Register(app *fiber.App, d *Deps) {
	loginLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"detail": "rate limit exceeded, retry soon"})
		},
	})

	// Customers
	app.Post("/customer", d.CustomerHandler.Create)
	app.Get("/customers", d.CustomerHandler.List)
	app.Post("/customer/get", loginLimiter, d.CustomerHandler.Login)
	app.Put("/customer/change-password/:id", d.CustomerHandler.ChangePassword)
	app.Put("/customer/update/:id", d.CustomerHandler.Update)
	app.Get("/customer/:id", d.CustomerHandler.Get)
	app.Delete("/customer/:id", d.CustomerHandler.Delete)

	// Manufacturers
	app.Post("/manufacturer", d.ManufacturerHandler.Create)
	app.Get("/manufacturers", d.ManufacturerHandler.List)
	app.Post("/manufacturer/get", loginLimiter, d.ManufacturerHandler.Login)
	app.Put("/manufacturer/change-password/:id", d.ManufacturerHandler.ChangePassword)
	app.Put("/manufacturer/update/:id", d.ManufacturerHandler.Update)
	app.Get("/manufacturer/:id", d.ManufacturerHandler.Get)
	app.Delete("/manufacturer/:id", d.ManufacturerHandler.Delete)

	// Products
	app.Post("/product", d.ProductHandler.Create)
	app.Get("/products", d.ProductHandler.List)
	app.Put("/product/update/:id", d.ProductHandler.Update)
	app.Get("/product/:id", d.ProductHandler.Get)
	app.Delete("/product/:id", d.ProductHandler.Delete)

	// Orders
	app.Post("/order", d.OrderHandler.Place)
	app.Get("/orders", d.OrderHandler.List)
	app.Get("/order/:id", d.OrderHandler.Get)
	app.Delete("/order/:id", d.OrderHandler.Cancel)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not found"})
	})
}

package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the API. Every entity route sits behind the auth
// middleware; only login is open.
func RegisterRoutes(app *fiber.App, auth *AuthHandler, customers *CustomerHandler, products *ProductHandler, sales *SaleHandler, authRequired fiber.Handler) {
	api := app.Group("/api")

	api.Post("/login", auth.Login)
	api.Post("/logout", authRequired, auth.Logout)
	api.Get("/user", authRequired, auth.Me)

	cu := api.Group("/customers", authRequired)
	cu.Get("/", customers.List)
	cu.Post("/", customers.Create)
	cu.Get("/:id", customers.Get)
	cu.Put("/:id", customers.Update)
	cu.Delete("/:id", customers.Delete)

	pr := api.Group("/products", authRequired)
	pr.Get("/", products.List)
	pr.Post("/", products.Create)
	pr.Get("/:id", products.Get)
	pr.Put("/:id", products.Update)
	pr.Delete("/:id", products.Delete)

	or := api.Group("/orders", authRequired)
	or.Get("/", sales.List)
	or.Post("/", sales.Create)
	or.Get("/:id", sales.Get)
	or.Put("/:id", sales.Update)
	or.Delete("/:id", sales.Delete)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

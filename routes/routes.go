package routes

import (
	"gamestore/controllers/admin"
	"gamestore/controllers/orders"
	"gamestore/controllers/public"
	"gamestore/controllers/user"
	"gamestore/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Gaming Store 2025 API"})
	})

	api := app.Group("/api")

	// public storefront
	api.Get("/games", public.GetGames)
	api.Get("/games/:id", public.GetGame)
	api.Get("/news", public.GetNews)
	api.Get("/banners", public.GetBanners)
	api.Post("/orders", orders.CreateOrder)

	// admin console
	api.Post("/admin/login", admin.Login)
	adminroutes := api.Group("/admin", middlewares.AdminAuth)
	adminroutes.Get("/games", admin.ListGames)
	adminroutes.Post("/games", admin.CreateGame)
	adminroutes.Put("/games/:id", admin.UpdateGame)
	adminroutes.Delete("/games/:id", admin.DeleteGame)
	adminroutes.Get("/news", admin.ListNews)
	adminroutes.Post("/news", admin.CreateNews)
	adminroutes.Put("/news/:id", admin.UpdateNews)
	adminroutes.Delete("/news/:id", admin.DeleteNews)
	adminroutes.Get("/banners", admin.ListBanners)
	adminroutes.Post("/banners", admin.CreateBanner)
	adminroutes.Put("/banners/:id", admin.UpdateBanner)
	adminroutes.Delete("/banners/:id", admin.DeleteBanner)
	adminroutes.Get("/orders", admin.ListOrders)
	adminroutes.Get("/stats", admin.Stats)

	// customer accounts
	api.Post("/users/register", user.Register)
	api.Post("/users/login", user.Login)
	userroutes := api.Group("/users", middlewares.UserAuth)
	userroutes.Get("/me", user.Me)
	userroutes.Get("/orders", user.ListOrders)
}

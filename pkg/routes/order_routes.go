package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojapratica/pix-backend/app/controllers"
)

func RegisterOrderRoutes(app *fiber.App, orders *controllers.OrderController) {
	app.Post("/novo-pedido", orders.CreateOrder)
}

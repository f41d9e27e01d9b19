package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojapratica/pix-backend/app/controllers"
)

func RegisterPaymentRoutes(app *fiber.App, payments *controllers.PaymentController) {
	app.Post("/create-payment", payments.CreatePayment)
	app.Post("/webhook-mp", payments.Webhook)
}

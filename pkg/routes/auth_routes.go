package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojapratica/pix-backend/app/controllers"
	"github.com/lojapratica/pix-backend/pkg/middleware"
)

func RegisterAuthRoutes(app *fiber.App, auth *controllers.AuthController, users *controllers.UserController) {
	app.Post("/cadastro", auth.Cadastro)
	app.Post("/login", auth.Login)

	app.Get("/perfil", middleware.JWTProtected(), users.Perfil)
}

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lojapratica/pix-backend/app/controllers"
	"github.com/lojapratica/pix-backend/app/queries"
	"github.com/lojapratica/pix-backend/pkg/config"
	"github.com/lojapratica/pix-backend/pkg/database"
	"github.com/lojapratica/pix-backend/pkg/logger"
	"github.com/lojapratica/pix-backend/pkg/routes"
	"github.com/lojapratica/pix-backend/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	cfg := config.Load(log)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to the database", zap.Error(err))
	}
	defer db.Close()
	log.Info("connected to the database", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	userQueries := &queries.UserQueries{DB: db}
	orderQueries := &queries.OrderQueries{DB: db}
	provider := utils.NewMercadoPagoClient(cfg.MPAccessToken)
	notifier := utils.NewWhatsAppClient(cfg.WhatsAppToken, cfg.WhatsAppPhoneID)

	auth := &controllers.AuthController{Users: userQueries, Log: log}
	users := &controllers.UserController{Users: userQueries, Log: log}
	payments := &controllers.PaymentController{Provider: provider, Notifier: notifier, Log: log}
	orders := &controllers.OrderController{Orders: orderQueries, Log: log}

	routes.RegisterAuthRoutes(app, auth, users)
	routes.RegisterPaymentRoutes(app, payments)
	routes.RegisterOrderRoutes(app, orders)

	log.Fatal("server stopped", zap.Error(app.Listen(":"+cfg.Port)))
}

package api

import (
	"errors"
	"time"

	"ironlady-chat/docs"
	"ironlady-chat/internal/api/handlers"
	"ironlady-chat/internal/dto"
	"ironlady-chat/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

const chatPath = "/api/chat"

type RouterConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func SetupRouter(
	chatHandler *handlers.ChatHandler,
	infoHandler *handlers.InfoHandler,
	cfg RouterConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ironlady-chat",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: errorHandler(appLogger),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", infoHandler.Root)
	app.Get("/health", infoHandler.Health)

	api := app.Group("/api")
	api.Get("/programs", infoHandler.Programs)
	api.Post("/chat", chatHandler.Chat)

	return app
}

// errorHandler renders {error}; chat requests also get apology text so the
// widget has something to display.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if c.Path() == chatPath && code >= fiber.StatusInternalServerError {
			logger.Error("Chat API error", zap.Error(err))
			return c.Status(code).JSON(dto.ChatErrorResponse{
				Error:    "Internal server error",
				Response: handlers.ApologyText,
			})
		}

		return c.Status(code).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
}

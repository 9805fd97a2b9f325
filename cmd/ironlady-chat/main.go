package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ironlady-chat/internal/api"
	"ironlady-chat/internal/api/handlers"
	"ironlady-chat/internal/models"
	"ironlady-chat/internal/repository"
	"ironlady-chat/internal/service"
	"ironlady-chat/pkg/config"
	"ironlady-chat/pkg/logger"
	"ironlady-chat/pkg/postgres"

	"go.uber.org/zap"
)

// @title Iron Lady Leadership Chatbot API
// @version 1.0.0
// @description FAQ-first support assistant for Iron Lady leadership programs with LLM fallback

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Iron Lady chatbot service")

	ctx := context.Background()

	kb := models.DefaultKnowledgeBase()
	resolver := service.NewResolver(kb)

	completer := service.NewOptionalCompleter(ctx, cfg, resolver.SystemPrompt(), logger.Named("llm"))
	if completer != nil {
		defer completer.Close()
	}

	// Chat logging is optional; without it no database connection is opened.
	var recorder service.ChatLogRecorder
	if cfg.ChatLog.Enabled {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			appLogger.Fatal("Failed to prepare chat log schema", zap.Error(err))
		}
		recorder = repository.NewChatLogRepository(db, logger.Named("chatlog"))
	}

	chatService := service.NewChatService(resolver, completer, recorder, cfg.LLM.Timeout, logger.Named("chat"))

	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	infoHandler, err := handlers.NewInfoHandler(kb, chatService.DelegationEnabled())
	if err != nil {
		appLogger.Fatal("Failed to initialize handlers", zap.Error(err))
	}

	app := api.SetupRouter(chatHandler, infoHandler, api.RouterConfig{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting",
			zap.String("address", addr),
			zap.Bool("llm_enabled", chatService.DelegationEnabled()),
			zap.String("llm_provider", cfg.LLM.Provider),
		)
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

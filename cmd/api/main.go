package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "todoboard/internal/adapter/db"
	httpadapter "todoboard/internal/adapter/http"
	"todoboard/internal/adapter/http/handlers"
	httpmiddleware "todoboard/internal/adapter/http/middleware"
	appservice "todoboard/internal/app/service"
	"todoboard/internal/config"
	"todoboard/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := dbadapter.Connect(connectCtx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("failed to disconnect from mongodb", zap.Error(err))
		}
	}()

	database := client.Database(cfg.DbName)
	if err := dbadapter.EnsureUserIndexes(connectCtx, database); err != nil {
		logger.Warn("failed to ensure user indexes", zap.Error(err))
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.CORSMiddleware(cfg.AllowedOrigins),
	)
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	todoRepository := dbadapter.NewTodoRepository(database)
	userRepository := dbadapter.NewUserRepository(database)
	todoService := appservice.NewTodoService(todoRepository)
	userService := appservice.NewUserService(userRepository)

	healthHandler := handlers.NewHealthHandler(client)
	todoHandler := handlers.NewTodoHandler(todoService)
	userHandler := handlers.NewUserHandler(userService)
	httpadapter.RegisterRoutes(r, healthHandler, todoHandler, userHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

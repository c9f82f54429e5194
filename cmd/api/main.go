package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/alt-7/task-management/internal/adapter/db"
	httpadapter "github.com/alt-7/task-management/internal/adapter/http"
	"github.com/alt-7/task-management/internal/adapter/http/handlers"
	httpmiddleware "github.com/alt-7/task-management/internal/adapter/http/middleware"
	appservice "github.com/alt-7/task-management/internal/app/service"
	"github.com/alt-7/task-management/internal/auth"
	"github.com/alt-7/task-management/internal/config"
	"github.com/alt-7/task-management/pkg/translator"
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
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		SecretKey:           cfg.JwtSecret,
		AccessTokenDuration: cfg.JwtTokenTTL,
		Issuer:              cfg.JwtIssuer,
	})

	taskRepository := dbadapter.NewTaskRepository(db)
	taskService := appservice.NewTaskService(taskRepository)
	taskHandler := handlers.NewTaskHandler(taskService)
	healthHandler := handlers.NewHealthHandler(db)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, httpmiddleware.RequireAuth(jwtManager))

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

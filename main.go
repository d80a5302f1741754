package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"formforge/config"
	dbpkg "formforge/db"
	"formforge/generation"
	"formforge/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the configuration file")
	flag.Parse()

	cfg := config.Get(*configPath)

	// Controllers read security settings from env; feed them the configured ones.
	if os.Getenv("FORMFORGE_JWT_SECRET") == "" {
		os.Setenv("FORMFORGE_JWT_SECRET", cfg.Security.JwtSecret)
	}
	if os.Getenv("FORMFORGE_TOKEN_VALID_DAYS") == "" {
		os.Setenv("FORMFORGE_TOKEN_VALID_DAYS", strconv.Itoa(cfg.Security.TokenValidDays))
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	dbpkg.SetConfigurations(cfg)
	database, err := dbpkg.Connect()
	if err != nil {
		sugar.Fatalw("failed to connect database", "error", err)
	}
	defer database.Close()

	ctx := context.Background()
	backend, err := generation.NewGeminiBackend(ctx, cfg.Gemini.ApiKey, cfg.Gemini.EmbeddingModel)
	if err != nil {
		sugar.Fatalw("failed to create gemini backend", "error", err)
	}

	generator := generation.NewGenerator(backend, cfg.GenerationModelList(), sugar)
	service := generation.NewService(database, backend, generator, sugar)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg, service, sugar)

	sugar.Infow("formforge listening", "port", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}

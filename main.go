package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/thales-vaz-sousa/sistema-atas/internals/configs"
	database "github.com/thales-vaz-sousa/sistema-atas/internals/databases"
	authScheduler "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/scheduler"
	templateService "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/service"
	middlewares "github.com/thales-vaz-sousa/sistema-atas/internals/middlewares"
	routes "github.com/thales-vaz-sousa/sistema-atas/internals/route"
	seeds "github.com/thales-vaz-sousa/sistema-atas/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON rápido
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middlewares básicos + performance
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + tempo de resposta
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.Migrate()
	database.WarmUpQueries()

	// ⏱ limpeza periódica da blacklist depois do DB pronto
	authScheduler.StartBlacklistCleanupScheduler(database.DB)

	// 🌱 instalação nova: usuário inicial via SEED_USERNAME/SEED_PASSWORD
	seeds.RunAllSeeds(database.DB)

	// 📄 garante ao menos um template por tipo para cada unidade
	if err := templateService.GarantirTemplatesPadrao(database.DB); err != nil {
		log.Printf("[ERROR] Seed de templates padrão: %v", err)
	}

	// ✅ Rotas
	routes.SetupRoutes(app, database.DB)

	// 🔒 timeouts de conexão do servidor
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + fecha o pool do DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

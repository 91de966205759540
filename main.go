package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"kampusku_backend/internals/configs"
	database "kampusku_backend/internals/databases"
	"kampusku_backend/internals/middlewares"
	routes "kampusku_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	app := fiber.New(fiber.Config{
		AppName:      "kampusku-backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupRoutes(app, database.DB)

	// Graceful shutdown: tunggu request berjalan selesai sebelum keluar.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("⚠️ Shutdown signal diterima, menutup server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("❌ Shutdown tidak bersih: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 kampusku-backend listen di :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server berhenti: %v", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server berhenti dengan bersih.")
}

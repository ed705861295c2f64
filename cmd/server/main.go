package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/pos-backend/internal/adapter/event"
	"github.com/rl1809/pos-backend/internal/adapter/handler"
	"github.com/rl1809/pos-backend/internal/adapter/storage"
	"github.com/rl1809/pos-backend/internal/config"
	"github.com/rl1809/pos-backend/internal/core/service"
	"github.com/rl1809/pos-backend/internal/port"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")

	// Initialize adapters
	store := storage.NewMySQLAdapter(db)
	tokens := storage.NewRedisTokenStore(rdb, cfg.TokenTTL)

	var events port.EventPublisher = event.NopPublisher{}
	if cfg.KafkaBroker != "" {
		publisher, err := event.NewKafkaPublisher(cfg.KafkaBroker)
		if err != nil {
			log.Fatalf("failed to connect kafka: %v", err)
		}
		defer publisher.Close()
		events = publisher
		log.Println("connected to kafka")
	}

	// Initialize services
	authService := service.NewAuthService(store, tokens)
	customerService := service.NewCustomerService(store)
	productService := service.NewProductService(store)
	saleService := service.NewSaleService(store, events)

	// Initialize HTTP server
	app := fiber.New(fiber.Config{AppName: "pos-backend"})
	app.Use(logger.New())

	handler.RegisterRoutes(app,
		handler.NewAuthHandler(authService),
		handler.NewCustomerHandler(customerService),
		handler.NewProductHandler(productService),
		handler.NewSaleHandler(saleService),
		handler.NewAuthMiddleware(authService),
	)

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")

	rdb.Close()
	db.Close()
	log.Println("connections closed")
}

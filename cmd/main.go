package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	orderapp "github.com/mukhtarmk/ecommerce-api/application/order"
	productapp "github.com/mukhtarmk/ecommerce-api/application/product"
	"github.com/mukhtarmk/ecommerce-api/cmd/config"
	mongoclient "github.com/mukhtarmk/ecommerce-api/cmd/mongo"
	redisclient "github.com/mukhtarmk/ecommerce-api/cmd/redis"
	_ "github.com/mukhtarmk/ecommerce-api/docs"
	orderRepo "github.com/mukhtarmk/ecommerce-api/repository/order"
	productRepo "github.com/mukhtarmk/ecommerce-api/repository/product"
	redisRepo "github.com/mukhtarmk/ecommerce-api/repository/redis"
	"github.com/mukhtarmk/ecommerce-api/thirdparty/rabbitmq"
	"github.com/mukhtarmk/ecommerce-api/transport"
	"github.com/mukhtarmk/ecommerce-api/utils/logger"
	"github.com/mukhtarmk/ecommerce-api/utils/metrics"
)

// @title CATALOG & ORDERS API
// @version 1.0
// @description Product catalog and order management API
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	metrics.MustRegister()

	// Connect to MongoDB and create indexes
	if err := mongoclient.New(cfg); err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoclient.Close()
	}()

	if err := mongoclient.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal("err create indexes", zap.Error(err))
	}

	// Initialize Redis client (optional product cache)
	if cfg.Redis.Host != "" {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Initialize RabbitMQ publisher (optional order events)
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Host != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	db := mongoclient.Get()
	ProductRepo := productRepo.NewProductRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	CacheRepo := redisRepo.NewRepository()

	// Initialize application layers
	ProductApp := productapp.NewProductApp(ProductRepo)
	OrderApp := orderapp.NewOrderApp(cfg, OrderRepo, ProductRepo, CacheRepo, publisher)

	httpTransport := transport.NewTransport(ProductApp, OrderApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/headlines/api/internal/config"
	"github.com/forgo/headlines/api/internal/database"
	"github.com/forgo/headlines/api/internal/handler"
	"github.com/forgo/headlines/api/internal/logging"
	"github.com/forgo/headlines/api/internal/middleware"
	"github.com/forgo/headlines/api/internal/repository"
	"github.com/forgo/headlines/api/internal/service"
	"github.com/forgo/headlines/api/internal/validator"
	"github.com/forgo/headlines/api/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger, logCloser := logging.New(cfg.Log)
	defer func() { _ = logCloser.Close() }()
	slog.SetDefault(logger)

	// Initialize user store
	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to connect to store",
			slog.String("driver", cfg.Database.Driver),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer closeStore()

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize services
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		JWTService: jwtService,
	})
	userService := service.NewUserService(service.UserServiceConfig{
		Store:     store,
		Validator: validator.New(),
		Logger:    logger,
	})

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)

	// Setup router
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health(store))

	// User endpoints - all require authentication
	authMiddleware := middleware.Auth(tokenService)
	handler.RegisterUserRoutes(mux, cfg.Server.BasePath, userHandler, authMiddleware)

	// Apply global middleware
	wrapped := middleware.Chain(
		handler.WithFallback(mux),
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("base_path", cfg.Server.BasePath),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// openStore connects the user store selected by DB_DRIVER
func openStore(ctx context.Context, cfg *config.Config) (service.UserStore, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverMongoDB:
		db := database.NewMongo(database.MongoConfig{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err := db.Connect(ctx); err != nil {
			return nil, nil, err
		}
		slog.Info("connected to mongodb",
			slog.String("database", cfg.Mongo.Database),
			slog.String("collection", cfg.Mongo.Collection),
		)
		return repository.NewMongoUserRepository(db, cfg.Mongo.Collection), func() { _ = db.Close() }, nil

	case config.DriverSurrealDB:
		db := database.NewSurrealDB(database.Config{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
		})
		if err := db.Connect(ctx); err != nil {
			return nil, nil, err
		}
		slog.Info("connected to surrealdb",
			slog.String("host", cfg.Database.Host),
			slog.String("database", cfg.Database.Database),
		)
		return repository.NewUserRepository(db), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Database.Driver)
	}
}

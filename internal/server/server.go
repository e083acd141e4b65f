package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"saral-shop/internal/config"
	"saral-shop/internal/database"
	custommiddleware "saral-shop/internal/middleware"
	"saral-shop/internal/payment"
	"saral-shop/internal/repository"
	"saral-shop/internal/service"
	"saral-shop/internal/storage"
	"saral-shop/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service) (*Server, error) {
	// Create router
	router := chi.NewRouter()

	isDevelopment := cfg.Server.Env == "development"

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(nil, isDevelopment))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Rate limiting is optional: enabled only when Redis is configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: 100,
			Window:            time.Minute,
			KeyPrefix:         "ratelimit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(db.Health())
	})

	// Image reference resolver
	imageResolver, err := storage.NewFromConfig(cfg.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to create image resolver: %w", err)
	}

	// Stored image binaries are served directly under the file strategy
	if cfg.Images.Strategy == "file" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Images.Dir)))
		router.Get("/uploads/*", fileServer.ServeHTTP)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db.DB())
	categoryRepo := repository.NewCategoryRepository(db.DB())
	occasionRepo := repository.NewOccasionRepository(db.DB())
	cartRepo := repository.NewCartRepository(db.DB())
	reviewRepo := repository.NewReviewRepository(db.DB())
	userRepo := repository.NewUserRepository(db.DB())
	refreshTokenRepo := repository.NewRefreshTokenRepository(db.DB())

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, categoryRepo, occasionRepo, imageResolver, cfg.Products.IDPrefix)
	cartService := service.NewCartService(cartRepo)
	reviewService := service.NewReviewService(reviewRepo)
	userService := service.NewUserService(userRepo, refreshTokenRepo, cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	paymentProvider := payment.NewRazorpayClient(cfg.Payment)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, logger)
	cartHandler := transport.NewCartHandler(cartService, logger)
	reviewHandler := transport.NewReviewHandler(reviewService, logger)
	userHandler := transport.NewUserHandler(userService, logger)
	paymentHandler := transport.NewPaymentHandler(paymentProvider, logger)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	adminMiddleware := custommiddleware.RequireAdmin(logger)

	// Register routes
	catalogHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)
	cartHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)
	paymentHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server, nil
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}

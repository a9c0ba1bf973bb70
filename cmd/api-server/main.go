package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"recipehub/database"
	"recipehub/internal/api/handler"
	"recipehub/internal/api/middleware"
	"recipehub/internal/api/repository"
	"recipehub/internal/api/service"
	"recipehub/internal/cache"
	"recipehub/internal/config"
	"recipehub/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	// Redis is optional, a nil cache degrades to direct reads
	catalogCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, catalog caching disabled")
		catalogCache = nil
	} else {
		defer catalogCache.Close()
	}

	images, err := storage.NewImageStore(cfg.MediaPath, cfg.MediaBaseURL)
	if err != nil {
		logger.Fatalf("could not set up media storage: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewCartRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo)
	tagSvc := service.NewTagService(tagRepo, catalogCache, logger)
	ingredientSvc := service.NewIngredientService(ingredientRepo, catalogCache, logger)
	recipeSvc := service.NewRecipeService(recipeRepo, ingredientRepo, tagRepo, images)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, recipeRepo)
	shoppingListSvc := service.NewShoppingListService(cartRepo, recipeRepo)
	subscriptionSvc := service.NewSubscriptionService(followRepo, userRepo, recipeRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userSvc, subscriptionSvc)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionSvc)
	tagHandler := handler.NewTagHandler(tagSvc)
	ingredientHandler := handler.NewIngredientHandler(ingredientSvc)
	recipeHandler := handler.NewRecipeHandler(recipeSvc, favoriteSvc, shoppingListSvc, subscriptionSvc)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.Static(cfg.MediaBaseURL, cfg.MediaPath)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		userHandler.RegisterRoutes(users, requireAuth, optionalAuth)
		subscriptionHandler.RegisterRoutes(users, requireAuth)

		tagHandler.RegisterRoutes(api.Group("/tags"), requireAuth)
		ingredientHandler.RegisterRoutes(api.Group("/ingredients"), requireAuth)
		recipeHandler.RegisterRoutes(api.Group("/recipes"), requireAuth, optionalAuth)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("API server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

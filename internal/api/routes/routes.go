package routes

import (
	"tracking-backend/internal/api/handlers"
	"tracking-backend/internal/api/middleware"
	"tracking-backend/internal/config"
	"tracking-backend/internal/repository"
	"tracking-backend/internal/services"
	"tracking-backend/pkg/cache"
	"tracking-backend/pkg/jwt"
	"tracking-backend/pkg/ratelimit"
	"tracking-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, redisClient *redis.Client, documents storage.Store, cfg *config.Config) {
	// Initialize repositories
	driverRepo := repository.NewDriverRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Shared infrastructure
	positionCache := cache.NewRedisPositionCache(redisClient, cache.DefaultCacheConfig())
	reportLimiter := ratelimit.NewRedisRateLimiter(redisClient, ratelimit.DefaultConfig())
	jwtUtil := jwt.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize services
	authService := services.NewAuthService(userRepo, jwtUtil)
	userService := services.NewUserService(userRepo)
	driverService := services.NewDriverService(driverRepo)
	driverService.SetPositionCache(positionCache)
	locationService := services.NewLocationService(driverRepo)
	locationService.SetPositionCache(positionCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	driverHandler := handlers.NewDriverHandler(driverService, documents)
	locationHandler := handlers.NewLocationHandler(locationService)
	healthHandler := handlers.NewHealthHandler(db, positionCache)

	router.GET("/health", healthHandler.Health)

	// API routes
	api := router.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	// Device traffic: reports arrive unauthenticated, throttled per driver
	api.POST("/drivers/:id/location", middleware.ReportRateLimit(reportLimiter), locationHandler.ReportLocation)
	api.GET("/drivers/:id/location", locationHandler.GetLocation)

	// Protected dispatcher routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtUtil))
	{
		drivers := protected.Group("/drivers")
		{
			drivers.GET("", driverHandler.GetDrivers)
			drivers.POST("", driverHandler.CreateDriver)
			drivers.GET("/:id", driverHandler.GetDriver)
			drivers.PUT("/:id", driverHandler.UpdateDriver)
			drivers.DELETE("/:id", driverHandler.DeleteDriver)
		}
	}
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buildmat-dispatch/internal/config"
	"buildmat-dispatch/internal/delivery/http/handler"
	"buildmat-dispatch/internal/dispatch/recommendation"
	"buildmat-dispatch/internal/infrastructure/database/postgres"
	"buildmat-dispatch/internal/logger"
	"buildmat-dispatch/internal/middleware"
	"buildmat-dispatch/internal/usecase/order"
	"buildmat-dispatch/internal/usecase/truck"
	"buildmat-dispatch/internal/usecase/user"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, notifier order.StatusNotifier) (*gin.Engine, *order.Service) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	userService := user.NewService(userRepository, cfg)
	userHandler := handler.NewUserHandler(userService)

	truckRepository := postgres.NewTruckRepository(db)
	truckService := truck.NewService(truckRepository)
	truckHandler := handler.NewTruckHandler(truckService)

	orderRepository := postgres.NewOrderRepository(db)
	engine := recommendation.NewEngine(nil)
	orderService := order.NewService(orderRepository, truckRepository, engine, notifier, cfg)
	orderHandler := handler.NewOrderHandler(orderService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProfileRoutes(protected)
			truckHandler.RegisterRoutes(protected)
			orderHandler.RegisterRoutes(protected)

			customer := protected.Group("")
			customer.Use(middleware.CustomerOnly())
			{
				orderHandler.RegisterCustomerRoutes(customer)
			}

			driver := protected.Group("")
			driver.Use(middleware.DriverOnly())
			{
				orderHandler.RegisterDriverRoutes(driver)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				truckHandler.RegisterAdminRoutes(admin)
				orderHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router, orderService
}

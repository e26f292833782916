// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/orbitto/orbitto-backend/internal/config"
	"github.com/orbitto/orbitto-backend/internal/handlers"
	"github.com/orbitto/orbitto-backend/internal/middleware"
	"github.com/orbitto/orbitto-backend/internal/services"
	"github.com/orbitto/orbitto-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	customerService := services.NewCustomerService(db)
	orderService := services.NewOrderService(db)
	inventoryService := services.NewInventoryService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"message": "ERP Backend is running",
			})
		})

		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		users := api.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Product reads are public; writes need a token
		products := api.Group("/products")
		{
			products.GET("/", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("/", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		customers := api.Group("/customers")
		customers.Use(middleware.AuthRequired())
		{
			customers.GET("/", customerHandler.ListCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.POST("/", customerHandler.CreateCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		orders := api.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.GET("/", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/", orderHandler.CreateOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
		}

		inventory := api.Group("/inventory")
		inventory.Use(middleware.AuthRequired())
		{
			inventory.GET("/", inventoryHandler.ListInventory)
			inventory.GET("/low-stock", inventoryHandler.ListLowStock)
			inventory.GET("/:id", inventoryHandler.GetInventory)
			inventory.PUT("/:id", inventoryHandler.UpdateInventory)
		}
	}

	return r
}

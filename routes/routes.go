package routes

import (
	"github.com/StephenTeay/food/configs"
	"github.com/StephenTeay/food/controllers"
	"github.com/StephenTeay/food/middlewares"
	"github.com/StephenTeay/food/repository"
	"github.com/StephenTeay/food/services"
	"github.com/StephenTeay/food/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	hub := ws.NewOrderHub()
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartSvc, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, orderRepo, catalogRepo, userRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/vendors", catalogCtrl.ListVendors)
	r.GET("/vendors/:id", catalogCtrl.VendorDetail)
	r.GET("/food", catalogCtrl.ListFood)
	r.GET("/food/search", catalogCtrl.Search)

	// Cart (customer)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (customer)
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.POST("", orderCtrl.Checkout)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/cancel", orderCtrl.Cancel)
	}

	// Live order events
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.Handle)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.GET("/orders/export", adminCtrl.ExportOrders)
		admin.GET("/orders/:id/items", adminCtrl.OrderItems)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateStatus)
		admin.GET("/users", adminCtrl.ListUsers)
		admin.POST("/vendors", adminCtrl.CreateVendor)
		admin.PATCH("/vendors/:id", adminCtrl.UpdateVendor)
		admin.POST("/food", adminCtrl.CreateFoodItem)
		admin.PATCH("/food/:id", adminCtrl.UpdateFoodItem)
	}
}

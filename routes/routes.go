package routes

import (
	"campuseats/configs"
	"campuseats/controllers"
	"campuseats/entity"
	"campuseats/middlewares"
	"campuseats/repository"
	"campuseats/services"
	"campuseats/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.NotifyHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.OTPTTL)
	notifSvc := services.NewNotificationService(notifRepo, hub)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, vendorRepo, notifSvc)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	menuSvc := services.NewMenuService(menuRepo, vendorRepo)
	favSvc := services.NewFavoriteService(favRepo, menuRepo)
	analyticsSvc := services.NewAnalyticsService(db, vendorRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	vendorOrderCtrl := controllers.NewVendorOrderController(orderSvc)
	vendorCtrl := controllers.NewVendorController(vendorRepo, menuSvc, analyticsSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	favCtrl := controllers.NewFavoriteController(favSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	adminCtrl := controllers.NewAdminController(db, analyticsSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/verify-otp", authCtrl.VerifyOTP)
		a.POST("/resend-otp", authCtrl.ResendOTP)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalog
	r.GET("/vendors", vendorCtrl.List)
	r.GET("/vendors/:id", vendorCtrl.Detail)
	r.GET("/vendors/:id/menu", vendorCtrl.Menus)
	r.GET("/menu-items/:id", vendorCtrl.MenuItemDetail)

	// Orders (customer)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)
		u.POST("/orders/:id/reorder", orderCtrl.Reorder)
	}

	// Cart
	cart := r.Group("/cart", middlewares.AuthMiddleware())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	// Favorites
	fav := r.Group("/favorites", middlewares.AuthMiddleware())
	{
		fav.GET("", favCtrl.List)
		fav.POST("/:menuItemId", favCtrl.Toggle)
	}

	// Notifications
	n := r.Group("/notifications", middlewares.AuthMiddleware())
	{
		n.GET("", notifCtrl.List)
		n.GET("/unread-count", notifCtrl.UnreadCount)
		n.PATCH("/read-all", notifCtrl.MarkAllRead)
		n.PATCH("/:id/read", notifCtrl.MarkRead)
	}

	// Live notification feed (token ผ่าน query ได้ เพราะ browser ws ใส่ header ไม่ได้)
	r.GET("/ws/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Vendor (vendor/admin)
	vendor := r.Group("/vendor", middlewares.AuthMiddleware(entity.RoleVendor, entity.RoleAdmin))
	{
		vendor.GET("/dashboard", vendorCtrl.Dashboard)
		vendor.GET("/orders", vendorOrderCtrl.List)
		vendor.GET("/orders/:id", vendorOrderCtrl.Detail)
		vendor.PATCH("/orders/:id/status", vendorOrderCtrl.UpdateStatus)
		vendor.GET("/menu", menuCtrl.ListOwn)
		vendor.POST("/menu", menuCtrl.Create)
		vendor.PATCH("/menu/:id", menuCtrl.Update)
		vendor.DELETE("/menu/:id", menuCtrl.Delete)
		vendor.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.POST("/vendors", adminCtrl.CreateVendor)
	}
}

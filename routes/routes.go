package routes

import (
	"github.com/22230902mani/Inventory-Management-System-sub000/controllers"
	"github.com/22230902mani/Inventory-Management-System-sub000/middleware"
	"github.com/22230902mani/Inventory-Management-System-sub000/models"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.RequestPasswordReset)
		auth.POST("/verify-reset-code", controllers.VerifyResetCode)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("", middleware.AuthMiddleware(), controllers.GetAllProducts)
		inventory.POST("", middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager, models.RoleSales), controllers.CreateProduct)
		inventory.GET("/pending", middleware.AuthMiddleware(models.RoleAdmin), controllers.GetPendingProducts)
		inventory.GET("/barcode/:code", middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager), controllers.GetProductByBarcode)
		inventory.GET("/:id", middleware.AuthMiddleware(), controllers.GetProduct)
		inventory.PUT("/:id", middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager), controllers.UpdateProduct)
		inventory.PUT("/:id/approve", middleware.AuthMiddleware(models.RoleAdmin), controllers.ApproveProduct)
		inventory.PUT("/:id/reject", middleware.AuthMiddleware(models.RoleAdmin), controllers.RejectProduct)
		inventory.PUT("/:id/stock", middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager), controllers.AdjustStock)
		inventory.DELETE("/:id", middleware.AuthMiddleware(models.RoleAdmin), controllers.DeleteProduct)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", middleware.AuthMiddleware(models.RoleUser), controllers.CreateOrder)
		orders.GET("", middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager), controllers.GetAllOrders)
		orders.GET("/my-orders", middleware.AuthMiddleware(), controllers.GetMyOrders)
		orders.GET("/track/:token", controllers.GetOrderByToken)
		orders.POST("/verify-payment", middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager), controllers.VerifyPayment)
		orders.PUT("/:id/verify-delivery", middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager), controllers.VerifyDelivery)
	}

	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(models.RoleAdmin))
	{
		users.GET("", controllers.ListUsers)
		users.PUT("/:id/verify", controllers.VerifyUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager))
	{
		dashboard.GET("/stats", controllers.DashboardStats)
		dashboard.GET("/users-list", controllers.DashboardUsersList)
		dashboard.POST("/send-message", controllers.SendMessage)
	}

	api.GET("/notifications", middleware.AuthMiddleware(), controllers.GetNotifications)
	api.PUT("/notifications/mark-all-read", middleware.AuthMiddleware(), controllers.MarkAllNotificationsRead)
	api.GET("/messages", middleware.AuthMiddleware(), controllers.GetMessages)
	api.POST("/upload", middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager, models.RoleSales), controllers.UploadImage)
	api.POST("/chatbot", middleware.AuthMiddleware(), controllers.Chatbot)
}

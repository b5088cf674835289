package routes

import (
	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/handlers"
	"dmac_back_end/internal/handlers/admin"
	"dmac_back_end/internal/handlers/order"
	"dmac_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", handlers.Health)

	// Catalogue (lecture publique)
	api.GET("/services", handlers.GetServices)
	api.GET("/services/:id", handlers.GetService)
	api.GET("/products", handlers.GetProducts)
	api.GET("/products/:id", handlers.GetProduct)
	api.GET("/testimonials", handlers.GetTestimonials)
	api.GET("/events", handlers.GetEvents)
	api.GET("/events/:id", handlers.GetEvent)

	// Commandes
	api.POST("/orders/checkout", order.Checkout)
	api.POST("/orders/paynow-result", order.PaynowResult)
	api.GET("/orders/:id/status", order.Status)

	// Admin
	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", middleware.AdminLoginRateLimit(), admin.Login)
	// WebSocket : le token passe en query, vérifié dans le handler
	adminGroup.GET("/orders/live", admin.OrdersLive)

	protected := adminGroup.Group("")
	protected.Use(middleware.AdminRequired())
	{
		protected.POST("/events", admin.CreateEvent)
		protected.PUT("/events/:id", admin.UpdateEvent)
		protected.DELETE("/events/:id", admin.DeleteEvent)

		protected.POST("/services", admin.CreateService)
		protected.PUT("/services/:id", admin.UpdateService)
		protected.DELETE("/services/:id", admin.DeleteService)

		protected.POST("/products", admin.CreateProduct)
		protected.PUT("/products/:id", admin.UpdateProduct)
		protected.DELETE("/products/:id", admin.DeleteProduct)

		protected.POST("/testimonials", admin.CreateTestimonial)
		protected.DELETE("/testimonials/:id", admin.DeleteTestimonial)

		protected.POST("/assets", admin.UploadAsset)
		protected.GET("/orders", admin.GetOrders)
	}
}

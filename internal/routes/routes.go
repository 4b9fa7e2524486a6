package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lumira_back_end/internal/handlers/admin"
	"lumira_back_end/internal/handlers/auth"
	"lumira_back_end/internal/handlers/order"
	"lumira_back_end/internal/handlers/product"
	"lumira_back_end/internal/handlers/shop"
	"lumira_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AllowCredentials = false
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	// --- Boutique (session invitée) ---
	api.GET("/categories", shop.GetCategories)
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/search", product.SearchProducts)
	api.GET("/products/:id", product.GetProduct)

	storefront := api.Group("")
	storefront.Use(middleware.GuestSession())
	{
		storefront.GET("/cart", shop.GetCart)
		storefront.POST("/cart/add", shop.AddToCart)
		storefront.PUT("/cart/quantity", shop.UpdateQuantity)
		storefront.DELETE("/cart/:productId", shop.RemoveFromCart)
		storefront.DELETE("/cart", shop.ClearCart)

		storefront.POST("/orders", order.CreateOrder)
	}

	// --- Back-office ---
	api.POST("/admin/login", auth.Login)

	adminRoutes := api.Group("/admin")
	adminRoutes.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adminRoutes.GET("/dashboard", admin.GetDashboardStats)

		adminRoutes.POST("/products", product.CreateProduct)
		adminRoutes.PUT("/products/:id", product.UpdateProduct)
		adminRoutes.DELETE("/products/:id", product.DeleteProduct)

		adminRoutes.POST("/upload", product.UploadImages)
		adminRoutes.POST("/products/:id/images", product.AddProductImage)
		adminRoutes.PUT("/products/:id/images/main", product.SetMainImage)
		adminRoutes.DELETE("/products/:id/images/:index", product.RemoveProductImage)

		adminRoutes.GET("/orders", order.ListOrders)
		adminRoutes.GET("/orders/:id", order.GetOrder)
		adminRoutes.PUT("/orders/:id/status", order.UpdateOrderStatus)
		adminRoutes.DELETE("/orders/:id", order.DeleteOrder)
	}
}

package routes

import (
	"github.com/Greendayy/Ali-Express/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API surface onto the engine.
func RegisterRoutes(
	r *gin.Engine,
	ac *controllers.AddressController,
	pc *controllers.ProductController,
	pay *controllers.PaymentController,
	nav *controllers.NavigationController,
) {
	api := r.Group("/api")
	{
		api.POST("/addresses", ac.CreateAddress)
		api.GET("/products", pc.GetProducts)
		api.POST("/payments/intent", pay.CreatePaymentIntent)
		api.GET("/navigate", nav.Decide)
	}
}

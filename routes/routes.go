package routes

import (
	"time"

	"bookday/handlers"
	"bookday/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCheckoutRoutes registers the customer-facing checkout endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.POST("/begin", hb.Checkout.BeginCheckout)
		api.POST("/quote", hb.Checkout.QuoteCheckout)
		api.POST("/complete/:sessionID", hb.Checkout.CompleteCheckout)
		api.DELETE("/abandon/:sessionID", hb.Checkout.AbandonCheckout)
	}
}

// RegisterBookingRoutes registers booking reads and the payment callback.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/:id", hb.Booking.GetBooking)
		api.POST("/:id/status", hb.Booking.UpdateStatus)
	}
}

// RegisterReferralRoutes registers public code/coupon validation.
func RegisterReferralRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/referrals")
	{
		api.GET("/code/:code", hb.Referral.ValidateCode)
		api.GET("/coupon/:code", hb.Referral.ValidateCoupon)
	}
}

// RegisterCreatorRoutes registers the creator dashboard endpoints.
func RegisterCreatorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/creators")
	{
		api.POST("/login", hb.Creator.Login)
		api.POST("/forgot-password", hb.Creator.ForgotPassword)
		api.POST("/reset-password", hb.Creator.ResetPassword)

		// Protected routes (Require Authentication)
		api.Use(middleware.CreatorAuthMiddleware())
		api.GET("/split", hb.Creator.GetSplit)
		api.PUT("/split", hb.Creator.UpdateSplit)
		api.PUT("/password", hb.Creator.ChangePassword)
	}
}

// RegisterUpgradeRoutes registers upgrade pricing and catalog reads.
func RegisterUpgradeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/upgrades")
	{
		api.GET("/quote/:bookingID", hb.Upgrade.QuoteUpgrade)
		api.GET("/links/:slug", hb.Upgrade.GetUpgradeLink)
	}
	r.GET("/api/packages", hb.Upgrade.ListPackages)
}

// RegisterRoutes applies CORS and registers every endpoint group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterCheckoutRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReferralRoutes(r, hb)
	RegisterCreatorRoutes(r, hb)
	RegisterUpgradeRoutes(r, hb)
}

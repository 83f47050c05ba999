package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/config"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/handler"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/middleware"
	"github.com/meditrack/pharmacy-pos-api/pkg/token"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Billing  *handler.BillingHandler
	Payment  *handler.PaymentHandler
	Report   *handler.ReportHandler
	Medicine *handler.MedicineHandler
	Customer *handler.CustomerHandler
	Chatbot  *handler.ChatbotHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *token.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiterCfg := middleware.DefaultRateLimiterConfig()
		if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
			rateLimiterCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
			rateLimiterCfg.BurstSize = deps.Cfg.RateLimit.Requests
		}
		rateLimiter := middleware.NewClientRateLimiter(rateLimiterCfg)
		protected.Use(rateLimiter.Middleware())

		registerBillingRoutes(protected, h)
		registerMedicineRoutes(protected, h)
		registerCustomerRoutes(protected, h)
		registerChatbotRoutes(protected, h)
	}

	return router
}

func registerBillingRoutes(protected *gin.RouterGroup, h *Handlers) {
	billing := protected.Group("/billing")
	{
		billing.GET("", h.Billing.List)
		billing.POST("", h.Billing.Create)
		billing.POST("/calculate-total", h.Billing.CalculateTotal)
		billing.POST("/process-payment", h.Payment.Process)
		billing.GET("/reports/daily", h.Report.Daily)
		billing.GET("/:id", h.Billing.Get)
	}
}

func registerMedicineRoutes(protected *gin.RouterGroup, h *Handlers) {
	medicines := protected.Group("/medicines")
	{
		medicines.GET("", h.Medicine.List)
		medicines.GET("/barcode/:barcode", h.Medicine.GetByBarcode)
		medicines.POST("/check-interactions", h.Medicine.CheckInteractions)
		medicines.GET("/:id", h.Medicine.Get)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
	}
}

func registerChatbotRoutes(protected *gin.RouterGroup, h *Handlers) {
	chatbot := protected.Group("/chatbot")
	{
		chatbot.POST("/message", h.Chatbot.Message)
		chatbot.GET("/suggestions", h.Chatbot.Suggestions)
		chatbot.POST("/feedback", h.Chatbot.Feedback)
		chatbot.GET("/history/:sessionId", h.Chatbot.History)
	}
}

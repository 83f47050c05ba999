package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/meditrack/pharmacy-pos-api/internal/config"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/repository"
	"github.com/meditrack/pharmacy-pos-api/internal/infrastructure/database"
	"github.com/meditrack/pharmacy-pos-api/internal/infrastructure/ledger"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/handler"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/routes"
	"github.com/meditrack/pharmacy-pos-api/pkg/token"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Release mode suppresses error detail in responses; APP_DEBUG=false
	// opts into that outside production too
	if cfg.App.Env == "production" || !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	taxRate, err := decimal.NewFromString(cfg.Billing.TaxRatePercent)
	if err != nil {
		log.Fatalf("Invalid TAX_RATE_PERCENT %q: %v", cfg.Billing.TaxRatePercent, err)
	}

	reportLoc, err := time.LoadLocation(cfg.Billing.ReportTimezone)
	if err != nil {
		log.Fatalf("Invalid REPORT_TIMEZONE %q: %v", cfg.Billing.ReportTimezone, err)
	}

	// Select the bill ledger backend
	var billLedger repository.BillRepository
	switch cfg.Ledger.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		billLedger = ledger.NewPostgresLedger(db)
	default:
		billLedger = ledger.NewMemoryLedger()
	}

	// Initialize JWT manager
	jwtManager := token.NewJWTManager(
		cfg.JWT.Secret,
		cfg.App.Name,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize services
	pricingService := service.NewPricingService(taxRate)
	billingService := service.NewBillingService(pricingService, billLedger)
	paymentService := service.NewPaymentService(billLedger)
	reportService := service.NewReportService(billLedger, reportLoc)
	catalogService := service.NewCatalogService(service.DefaultMedicines())
	chatbotService := service.NewChatbotService(catalogService)
	customerService := service.NewCustomerService()
	authService := service.NewAuthService(jwtManager)
	authService.SeedAdmin(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Billing:  handler.NewBillingHandler(billingService),
		Payment:  handler.NewPaymentHandler(paymentService),
		Report:   handler.NewReportHandler(reportService),
		Medicine: handler.NewMedicineHandler(catalogService),
		Customer: handler.NewCustomerHandler(customerService),
		Chatbot:  handler.NewChatbotHandler(chatbotService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s | ledger driver: %s", cfg.App.Env, cfg.Ledger.Driver)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

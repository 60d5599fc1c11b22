package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/config"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/handler"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/middleware"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	donationRepo := repository.NewDonationRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	auditSvc := service.NewAuditService(auditRepo)
	authSvc := service.NewAuthService(cfg)
	productSvc := service.NewProductService(productRepo, auditSvc)
	saleSvc := service.NewSaleService(saleRepo, productRepo, customerRepo, auditSvc, dispatcher)
	customerSvc := service.NewCustomerService(customerRepo)
	goalSvc := service.NewGoalService(goalRepo, auditSvc)
	reportSvc := service.NewReportService(reportRepo, saleRepo, settingsRepo, cfg.PDFStoragePath)
	settingsSvc := service.NewSettingsService(settingsRepo, productRepo, saleRepo, customerRepo, auditSvc)
	donationSvc := service.NewDonationService(donationRepo, productRepo, auditSvc)
	dashboardSvc := service.NewDashboardService(saleRepo, productRepo, goalRepo, settingsRepo, rdb)
	bootstrapSvc := service.NewBootstrapService(productRepo, saleRepo, customerRepo, goalRepo, settingsRepo, cfg.SeedOnStart)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	goalsH := handler.NewGoalsHandler(goalSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	donationsH := handler.NewDonationsHandler(donationSvc)
	auditH := handler.NewAuditLogHandler(auditSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	webhookH := handler.NewWebhookHandler(saleSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Everything below waits for the seed + migration to have run once.
	startup := middleware.Startup(bootstrapSvc)

	r.POST("/api/login", startup, middleware.LoginRateLimiter(), authH.Login)

	// Admin routes — shared bearer token
	api := r.Group("/api", startup, middleware.BearerAuth(cfg.APIToken))
	{
		api.GET("/products", productsH.List)
		api.POST("/products", productsH.Create)
		api.PUT("/products/:id", productsH.Update)
		api.DELETE("/products/:id", productsH.Delete)

		api.GET("/sales", salesH.List)
		api.POST("/sales", salesH.Create)
		api.PUT("/sales/:id", salesH.Update)
		api.DELETE("/sales/:id", salesH.Delete)
		api.POST("/sales/batch", salesH.Batch)
		api.POST("/sales/import", salesH.ImportXLSX)

		api.GET("/customers", customersH.List)

		api.GET("/goals", goalsH.List)
		api.POST("/goals", goalsH.Upsert)
		api.DELETE("/goals/:id", goalsH.Delete)

		api.GET("/reports", reportsH.List)
		api.GET("/reports/:id/pdf", reportsH.PDF)

		api.GET("/settings", settingsH.Get)
		api.POST("/settings", settingsH.Update)
		api.POST("/settings/regenerate-api-key", settingsH.RegenerateAPIKey)
		api.POST("/settings/amazon/connect", settingsH.AmazonConnect)
		api.POST("/settings/amazon/disconnect", settingsH.AmazonDisconnect)
		api.POST("/settings/amazon/sync-sales", settingsH.AmazonSyncSales)

		api.GET("/audit-log", auditH.List)

		api.GET("/donations", donationsH.List)
		api.POST("/donations", donationsH.Create)

		api.GET("/dashboard", dashboardH.Metrics)
		api.GET("/forecast", dashboardH.Forecast)
	}

	// Webhook routes — X-API-KEY from settings, for external storefronts
	webhook := r.Group("/api/webhook", startup, middleware.APIKeyAuth(settingsRepo))
	{
		webhook.POST("/sale", webhookH.CreateSale)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

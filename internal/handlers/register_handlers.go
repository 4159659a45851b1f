package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ledgerpad/ledgerpad_app/cmd/docs"
	"github.com/ledgerpad/ledgerpad_app/internal/core/services"
	"github.com/ledgerpad/ledgerpad_app/internal/middleware"
	"github.com/ledgerpad/ledgerpad_app/internal/platform/config"
)

// RegisterRoutes wires middleware and every endpoint group onto the router.
func RegisterRoutes(router *gin.Engine, svcs *services.ServiceContainer, cfg *config.Config, logger *slog.Logger) error {
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	rateLimiter, err := middleware.NewRateLimiter(logger, cfg.RateLimitPerMinute)
	if err != nil {
		return err
	}
	router.Use(rateLimiter)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	setupAPIV1Routes(router, svcs, cfg)
	setupSwaggerRoutes(router, cfg)
	return nil
}

func setupAPIV1Routes(router *gin.Engine, svcs *services.ServiceContainer, cfg *config.Config) {
	authHandler := NewAuthHandler(svcs.AuthSvc)
	userHandler := NewUserHandler(svcs.UserSvc)
	currencyHandler := NewCurrencyHandler(svcs.CurrencySvc)
	invoiceHandler := NewInvoiceHandler(svcs.InvoiceSvc, svcs.AllocationSvc)
	paymentHandler := NewPaymentHandler(svcs.PaymentSvc, svcs.AllocationSvc)
	allocationHandler := NewAllocationHandler(svcs.AllocationSvc)
	bankTxnHandler := NewBankTransactionHandler(svcs.BankTransactionSvc, svcs.ReconciliationSvc)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/google", authHandler.GoogleLogin)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/me", userHandler.GetMe)
			users.PATCH("/me", userHandler.UpdateMe)
			users.DELETE("/me", userHandler.DeleteMe)
		}

		currencies := protected.Group("/currencies")
		{
			currencies.POST("", currencyHandler.CreateCurrency)
			currencies.GET("", currencyHandler.ListCurrencies)
			currencies.GET("/:code", currencyHandler.GetCurrency)
		}

		invoices := protected.Group("/invoices")
		{
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.PATCH("/:id", invoiceHandler.UpdateInvoice)
			invoices.POST("/:id/send", invoiceHandler.SendInvoice)
			invoices.POST("/:id/void", invoiceHandler.VoidInvoice)
			invoices.GET("/:id/applications", invoiceHandler.ListInvoiceApplications)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("", paymentHandler.CreatePayment)
			payments.GET("", paymentHandler.ListPayments)
			payments.GET("/:id", paymentHandler.GetPayment)
			payments.POST("/:id/post", paymentHandler.PostPayment)
			payments.GET("/:id/applications", paymentHandler.ListPaymentApplications)
		}

		applications := protected.Group("/applications")
		{
			applications.POST("", allocationHandler.ApplyPayment)
			applications.POST("/batch", allocationHandler.ApplyPaymentBatch)
			applications.GET("/:id", allocationHandler.GetApplication)
			applications.POST("/:id/reverse", allocationHandler.ReverseApplication)
		}

		bankTxns := protected.Group("/bank-transactions")
		{
			bankTxns.POST("", bankTxnHandler.CreateBankTransaction)
			bankTxns.POST("/import", bankTxnHandler.ImportBankTransactions)
			bankTxns.GET("", bankTxnHandler.ListBankTransactions)
			bankTxns.GET("/:id", bankTxnHandler.GetBankTransaction)
			bankTxns.POST("/:id/reconcile", bankTxnHandler.ReconcileBankTransaction)
			bankTxns.POST("/:id/unreconcile", bankTxnHandler.UnreconcileBankTransaction)
		}
	}
}

func setupSwaggerRoutes(router *gin.Engine, cfg *config.Config) {
	if !cfg.SwaggerEnabled {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

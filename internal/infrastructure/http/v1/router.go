// Package v1 provides the HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/domain/clients"
	"fakturo/internal/domain/invoiceitems"
	"fakturo/internal/domain/invoices"
	"fakturo/internal/domain/products"
	"fakturo/internal/domain/reports"
	"fakturo/internal/infrastructure/http/v1/handlers"
	"fakturo/internal/infrastructure/http/v1/middleware"
	"fakturo/internal/infrastructure/storage/postgres"
	"fakturo/internal/infrastructure/storage/postgres/entity_repo"
	"fakturo/internal/infrastructure/storage/postgres/report_repo"
	"fakturo/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (also used for health checks).
	Pool *postgres.Pool

	// Logger for request logging.
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router with all routes wired.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	txm := postgres.NewTxManager(cfg.Pool)

	clientService := clients.NewService(entity_repo.NewClientRepo(txm))
	productService := products.NewService(entity_repo.NewProductRepo(txm))
	invoiceService := invoices.NewService(entity_repo.NewInvoiceRepo(txm))
	invoiceItemService := invoiceitems.NewService(entity_repo.NewInvoiceItemRepo(txm))
	reportService := reports.NewService(report_repo.NewReportRepo(txm))

	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	invoiceItemHandler := handlers.NewInvoiceItemHandler(invoiceItemService)
	reportsHandler := handlers.NewReportsHandler(reportService)

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	api := router.Group("/api")
	{
		clientRoutes := api.Group("/clients")
		{
			clientRoutes.GET("", clientHandler.List)
			clientRoutes.POST("", clientHandler.Create)
			clientRoutes.GET("/client-transactions-over-time/:id", reportsHandler.ClientTransactionsOverTime)
			clientRoutes.GET("/client-money-spent-over-time/:id", reportsHandler.ClientMoneySpentOverTime)
			clientRoutes.GET("/top-products/:id", reportsHandler.TopProductsByClient)
			clientRoutes.GET("/:id", clientHandler.Get)
			clientRoutes.PUT("/:id", clientHandler.Replace)
			clientRoutes.DELETE("/:id", clientHandler.Delete)
		}

		productRoutes := api.Group("/products")
		{
			productRoutes.GET("", productHandler.List)
			productRoutes.POST("", productHandler.Create)
			productRoutes.GET("/max-values", reportsHandler.MaxProductValues)
			productRoutes.GET("/quantity-over-time", reportsHandler.ProductQuantityOverTime)
			productRoutes.GET("/product-transactions-over-time/:id", reportsHandler.ProductTransactionsOverTime)
			productRoutes.GET("/product-profit-over-time/:id", reportsHandler.ProductProfitOverTime)
			productRoutes.GET("/purchases-by-client/:id", reportsHandler.ProductPurchasesByClient)
			productRoutes.GET("/:id", productHandler.Get)
			productRoutes.PUT("/:id", productHandler.Replace)
			productRoutes.DELETE("/:id", productHandler.Delete)
			productRoutes.POST("/:id/increase-quantity", productHandler.IncreaseQuantity)
		}

		invoiceRoutes := api.Group("/invoices")
		{
			invoiceRoutes.GET("", invoiceHandler.List)
			invoiceRoutes.POST("", invoiceHandler.Create)
			invoiceRoutes.GET("/cumulative-invoices-over-time", reportsHandler.InvoicesOverTime)
			invoiceRoutes.GET("/total-profit-over-time", reportsHandler.TotalProfitOverTime)
			invoiceRoutes.GET("/:id", invoiceHandler.Get)
			invoiceRoutes.PUT("/:id", invoiceHandler.Replace)
			invoiceRoutes.DELETE("/:id", invoiceHandler.Delete)
		}

		invoiceItemRoutes := api.Group("/invoiceitems")
		{
			invoiceItemRoutes.GET("", invoiceItemHandler.List)
			invoiceItemRoutes.POST("", invoiceItemHandler.Create)
			invoiceItemRoutes.GET("/top-selling-products", reportsHandler.TopSellingProducts)
			invoiceItemRoutes.GET("/top-income-products", reportsHandler.TopIncomeProducts)
			invoiceItemRoutes.GET("/item-prices/:id", reportsHandler.ItemPricesForInvoice)
			invoiceItemRoutes.GET("/:id", invoiceItemHandler.Get)
			invoiceItemRoutes.PUT("/:id", invoiceItemHandler.Replace)
			invoiceItemRoutes.DELETE("/:id", invoiceItemHandler.Delete)
		}
	}

	return router
}

package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gstinvoice/docs"
	"gstinvoice/internal/handler"
	"gstinvoice/internal/middleware"
	"gstinvoice/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Company   *handler.CompanyHandler
	Customer  *handler.CustomerHandler
	Catalog   *handler.CatalogHandler
	Numbering *handler.NumberingHandler
	Invoice   *handler.InvoiceHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	v1.POST("/auth/login", h.Auth.Login)

	// Protected routes - require valid JWT and an active session
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.POST("/auth/logout", h.Auth.Logout)

	company := protected.Group("/company")
	company.GET("", h.Company.Get)
	company.PUT("", h.Company.Update)

	customers := protected.Group("/customers")
	customers.GET("", h.Customer.List)
	customers.POST("", h.Customer.Create)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", h.Customer.Delete)

	catalog := protected.Group("/catalog")
	catalog.GET("", h.Catalog.List)
	catalog.POST("", h.Catalog.Create)
	catalog.PUT("/:id", h.Catalog.Update)
	catalog.DELETE("/:id", h.Catalog.Delete)
	protected.POST("/invoice-lines", h.Catalog.NewLine)

	protected.POST("/invoice-numbers/next", h.Numbering.Next)

	invoices := protected.Group("/invoices")
	invoices.POST("/preview", h.Invoice.Preview)
	invoices.POST("/pdf", h.Invoice.DraftPDF)
	invoices.GET("/export.csv", h.Invoice.ExportCSV)
	invoices.GET("", h.Invoice.List)
	invoices.POST("", h.Invoice.Create)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.PUT("/:id", h.Invoice.Update)
	invoices.DELETE("/:id", h.Invoice.Delete)
	invoices.GET("/:id/pdf", h.Invoice.PDF)
	invoices.POST("/:id/send", h.Invoice.Send)

	return r
}

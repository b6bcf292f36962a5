package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hisabiq/hisab_backend/cmd/docs"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/middleware"
	"github.com/hisabiq/hisab_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services)

	// Everything under /api/v1 requires a valid bearer token.
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerCurrencyRoutes(v1, services.Currency)
	registerCompanyRoutes(v1, services.Company)

	// Company-scoped resources share the /companies/:companyID prefix.
	companies := v1.Group("/companies")
	registerAccountRoutes(companies, services.Account, services.Journal)
	registerJournalRoutes(companies, services.Journal)
	registerInvoiceRoutes(companies, services.Invoice)
	registerExpenseRoutes(companies, services.Expense)
	registerVoucherRoutes(companies, services.Voucher)
	registerCheckRoutes(companies, services.Check)
	registerPartyRoutes(companies, services.Party)
	registerAttachmentRoutes(companies, services.Attachment)
	registerReportingRoutes(companies, services.Reporting)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leonardoAndre7/banco-ledger/internal/config"
	"github.com/leonardoAndre7/banco-ledger/internal/handler"
	"github.com/leonardoAndre7/banco-ledger/internal/middleware"
)

// SetupRouter configures the Gin engine and wires every handler.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	// auth endpoints are open
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	registryHandler := handler.NewRegistryHandler(db)
	protected.GET("/clients", registryHandler.ListClients)
	protected.POST("/clients", registryHandler.CreateClient)
	protected.GET("/tariffs", registryHandler.ListTariffs)
	protected.POST("/tariffs", registryHandler.CreateTariff)

	importHandler := handler.NewImportHandler(db, cfg.Import)
	protected.POST("/import/preview", importHandler.Preview)
	protected.POST("/import/confirm", importHandler.Confirm)

	txHandler := handler.NewTransactionHandler(db, cfg.App.PageSize)
	protected.GET("/transactions", txHandler.List)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/businesscards/internal/logging"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(logging.RequestID())
	router.Use(logging.GinLogger())
	router.Use(gin.Recovery())

	if cfg.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = cfg.MaxUploadBytes
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	cardsController := NewCardsController(cfg.Cards, cfg.Cards)
	importController := NewImportController(cfg.Cards)
	exportController := NewExportController(cfg.Cards)

	api := router.Group("/api/BusinessCard")
	{
		api.GET("", cardsController.List)
		api.POST("", cardsController.Create)
		api.GET("/export", exportController.Export)
		api.POST("/import", importController.ImportFile)
		api.POST("/import-qr", importController.ImportQR)
		api.GET("/:id", cardsController.Get)
		api.DELETE("/:id", cardsController.Delete)
	}

	if cfg.Audit != nil {
		auditController := NewAuditController(cfg.Audit)
		router.GET("/api/audit", auditController.GetAuditEvents)
	}

	return router
}

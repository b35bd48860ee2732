package routes

import (
	"context"
	"fmt"

	_ "quote_desk/docs"
	"quote_desk/internal/infrastructure/config"
	"quote_desk/internal/infrastructure/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the application for cfg and serves it until the listener fails.
func Run(ctx context.Context, cfg *config.Config) error {
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.IsTest():
		gin.SetMode(gin.TestMode)
	}

	h, err := BuildHandlers(ctx, cfg)
	if err != nil {
		return fmt.Errorf("wire handlers: %w", err)
	}

	router := NewRouter(cfg, h)
	logger.For("routes", "Run").WithField("port", cfg.Port).WithField("storage", cfg.StorageDriver).Info("server starting")
	return router.Run(":" + cfg.Port)
}

// NewRouter registers middlewares, swagger and the /v1 API on a new engine.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h)
	addQuoteRoutes(v1, h)
	addSettlementRoutes(v1, h)
	addEmailQuoteRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.For("routes", "recovery").WithField("path", c.Request.URL.Path).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsCfg := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.ExposeHeaders = []string{"Content-Disposition"}
	router.Use(cors.New(corsCfg))
}

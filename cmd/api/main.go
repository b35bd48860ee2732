package main

import (
	"context"

	_ "quote_desk/docs"
	"quote_desk/internal/adapter/http/routes"
	"quote_desk/internal/infrastructure/config"
	"quote_desk/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quote Desk API
// @version         1.0
// @description     Travel quote management: catalog, service sheets, quotes, settlements and email intake.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	log := logger.For("main", "main")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.WithError(err).Warn("unknown log level, keeping default")
	}

	if err := routes.Run(context.Background(), cfg); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

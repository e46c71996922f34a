package main

import (
	"log"

	_ "eventpilot/docs"
	"eventpilot/internal/adapter/http/routes"
	"eventpilot/internal/config"
	"eventpilot/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EventPilot API
// @version         1.0
// @description     Event rental operations backend: estimates, invoices, client approvals and payments, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	routes.Run(cfg, zapLogger)
}

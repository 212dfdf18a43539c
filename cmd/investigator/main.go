package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/phishinv/phish-investigator/internal/adapters/alert"
	"github.com/phishinv/phish-investigator/internal/adapters/enrichment"
	"github.com/phishinv/phish-investigator/internal/adapters/ledger"
	"github.com/phishinv/phish-investigator/internal/adapters/web"
	"github.com/phishinv/phish-investigator/internal/application"
	"github.com/phishinv/phish-investigator/internal/domain/scoring"
)

func main() {
	log.Println("Starting Phish Investigator...")

	// Configuration
	// In production, use proper config management (Viper, environment-specific configs)
	addr := getEnv("INVESTIGATOR_ADDR", ":8000")
	fragmentURL := getEnv("ALERT_FRAGMENT_URL", "http://127.0.0.1:8001/fragment")
	templateGlob := getEnv("TEMPLATE_GLOB", "templates/*")

	// Adapters (driven port implementations)
	store := ledger.NewMemoryLedger()
	resolver := enrichment.NewResolver(enrichment.DefaultTimeout)
	notifier := alert.NewHTTPNotifier(fragmentURL)

	// Domain logic
	scorer := scoring.NewScorer()

	// Application service (dependency injection via constructor)
	service := application.NewInvestigationService(store, scorer, resolver, notifier)

	gin.SetMode(gin.ReleaseMode)
	router := web.NewRouter(service, templateGlob)

	log.Printf("🚀 Listening on %s (alert hand-off → %s)", addr, fragmentURL)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

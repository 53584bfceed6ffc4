// Standalone seeder for local development. The API server can also seed on
// startup with SEED=true; this script exists for re-seeding a running
// database without restarting the server.
// Usage: go run scripts/seed/main.go
package main

import (
	"github.com/vitapulse/health-tracker/internal/config"
	"github.com/vitapulse/health-tracker/internal/seed"
	"github.com/vitapulse/health-tracker/pkg/logger"
)

func main() {
	cfg := config.Load()

	appLog := logger.NewDevelopment()
	defer appLog.Sync()

	db, err := config.NewDatabase(cfg, appLog)
	if err != nil {
		appLog.Fatalw("failed to connect to database", "error", err)
	}

	if err := seed.Run(db, appLog); err != nil {
		appLog.Fatalw("seeding failed", "error", err)
	}

	appLog.Info("seeding complete")
}

package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"drawcast/adapters/ingest"
	"drawcast/adapters/postgres"
	"drawcast/adapters/rng"
	"drawcast/adapters/stats/engine"
	"drawcast/app"
	"drawcast/internal/config"
	"drawcast/internal/errors"
	"drawcast/internal/migration"
	"drawcast/ui"
)

func main() {
	// Load .env file if present (ignore errors in production)
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	predictor, err := engine.NewEngine(engine.Config{
		Alpha:                 appConfig.Engine.Alpha,
		Beta:                  appConfig.Engine.Beta,
		ActualWeight:          appConfig.Engine.ActualWeight,
		PredictedWeight:       appConfig.Engine.PredictedWeight,
		PredictedCoOccurrence: appConfig.Engine.PredictedCoOccurrence,
	})
	if err != nil {
		log.Fatalf("Failed to configure prediction engine: %v", err)
	}

	service := app.NewPredictionService(
		postgres.NewDrawRepository(db),
		postgres.NewPredictionRepository(db),
		predictor,
		rng.NewAdapter(appConfig.Engine.Seed),
		appConfig.Engine.Seed,
	)

	if appConfig.Paths.HistoryFile != "" {
		if err := importHistory(service, appConfig.Paths.HistoryFile); err != nil {
			log.Printf("Warning: history import failed: %v", err)
		}
	}

	if appConfig.Ops.Enabled {
		ops := ui.NewOpsServer(service)
		go func() {
			if err := ops.Start(appConfig.Ops.Port); err != nil {
				log.Printf("Ops server stopped: %v", err)
			}
		}()
	}

	server := ui.NewServer(ui.Config{
		Port:    appConfig.Server.Port,
		GinMode: appConfig.Server.GinMode,
	}, service)
	if err := server.Start(appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDatabase initializes the PostgreSQL database connection and schema
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	runner := migration.NewRunner()
	if err := runner.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

// importHistory loads a draw history file into the store at startup
func importHistory(service *app.PredictionService, path string) error {
	result, err := ingest.NewHistoryReader(path).ReadHistory()
	if err != nil {
		return err
	}

	stored, err := service.ImportHistory(context.Background(), result.Records)
	if err != nil {
		return err
	}
	log.Printf("Imported %d historical draws from %s (%d rows skipped)", stored, path, result.Skipped)
	return nil
}

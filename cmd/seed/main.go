// Command seed creates the catalog tables and loads the sample authors and
// books into an empty database.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/pkg/logger"
)

func main() {
	var (
		envFile    = flag.String("env-file", ".env", "optional dotenv file to load first")
		schemaOnly = flag.Bool("schema-only", false, "create tables without inserting sample data")
		timeout    = flag.Duration("timeout", time.Minute, "overall deadline")
	)
	flag.Parse()

	envErr := godotenv.Load(*envFile)
	logger.Init("development", os.Getenv("LOG_LEVEL"))
	if envErr != nil {
		log.Debug().Str("file", *envFile).Msg("No env file loaded")
	}

	if err := run(*schemaOnly, *timeout); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
}

func run(schemaOnly bool, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db.Pool); err != nil {
		return err
	}
	log.Info().Msg("Schema ready")

	if schemaOnly {
		return nil
	}

	result, err := database.Seed(ctx, db.Pool)
	if err != nil {
		return err
	}
	if result.Skipped {
		log.Info().Msg("Authors already present, sample data not inserted")
		return nil
	}

	logger.Info("Sample data inserted", map[string]interface{}{
		"authors": result.Authors,
		"books":   result.Books,
	})
	return nil
}

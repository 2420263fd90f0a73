package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/ballotbox/internal/config"
)

// migrations applies the embedded Postgres migrations. With a name argument
// only the matching migration is executed.
func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Parse("migrations", append([]string{"-store", config.DriverPostgres}, os.Args[1:]...))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	store, err := postgres.Connect(ctx, cfg.Store.Postgres.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	names, err := postgres.Migrations()
	if err != nil {
		log.Fatal(err)
	}

	if len(cfg.Args) > 0 {
		name, err := migrationFilePath(names, cfg.Args[0])
		if err != nil {
			log.Fatal(err)
		}
		names = []string{name}
	}

	for _, name := range names {
		if err := postgres.ApplyMigration(ctx, store.DB(), name); err != nil {
			log.Fatalf("Failed to execute SQL file: %v", err)
		}
		fmt.Printf("Migration %s executed successfully.\n", name)
	}
}

func migrationFilePath(names []string, migrationName string) (string, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`^.*%s\.up\.sql$`, regexp.QuoteMeta(migrationName)))
	if err != nil {
		return "", fmt.Errorf("invalid pattern: %w", err)
	}

	for _, name := range names {
		if regex.MatchString(name) {
			return name, nil
		}
	}

	return "", fmt.Errorf("migration file not found")
}

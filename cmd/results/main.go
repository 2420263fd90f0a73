package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/document"
	"github.com/vncsmyrnk/ballotbox/internal/config"
	"github.com/vncsmyrnk/ballotbox/internal/core/services"
)

// results prints the current tally as JSON, reading the same store as the server.
func main() {
	if err := config.LoadEnv(); err != nil {
		log.Println(err)
	}

	cfg, err := config.Parse("results", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := repository.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	resultsService := services.NewResultsService(document.NewVoteRepository(store))

	results, err := resultsService.Results(ctx)
	if err != nil {
		log.Fatalf("Error computing results: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
		log.Fatal(err)
	}
}

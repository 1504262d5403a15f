// Command seed loads the sample stock catalog into Postgres, replacing
// whatever the table currently holds. One-shot administrative utility.
package main

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/artem13815/stockchat/pkg/config"
	"github.com/artem13815/stockchat/pkg/item"
	pgrepo "github.com/artem13815/stockchat/pkg/repository/postgres"
	"github.com/artem13815/stockchat/pkg/storage/postgres"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	runID := uuid.NewString()
	log.Printf("seed %s: connecting to postgres", runID)

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("seed %s: postgres connect: %v", runID, err)
	}
	defer pool.Close()

	repo, err := pgrepo.NewItemRepository(pool)
	if err != nil {
		log.Fatalf("seed %s: init item repo: %v", runID, err)
	}

	deleted, err := repo.DeleteAll(ctx)
	if err != nil {
		log.Fatalf("seed %s: clear existing items: %v", runID, err)
	}
	log.Printf("seed %s: deleted %d existing items", runID, deleted)

	for _, it := range item.SampleItems {
		if err := repo.Add(ctx, it); err != nil {
			log.Fatalf("seed %s: insert %s: %v", runID, it.Code, err)
		}
	}
	log.Printf("seed %s: inserted %d items", runID, len(item.SampleItems))
}

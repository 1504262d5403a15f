// Command dbcheck verifies store connectivity: it connects, pings and
// reports how many stock items are present. One-shot administrative utility.
package main

import (
	"context"
	"log"
	"time"

	"github.com/artem13815/stockchat/pkg/config"
	pgrepo "github.com/artem13815/stockchat/pkg/repository/postgres"
	"github.com/artem13815/stockchat/pkg/storage/postgres"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("dbcheck: postgres connect: %v", err)
	}
	defer pool.Close()
	log.Printf("dbcheck: connected in %v", time.Since(start))

	repo, err := pgrepo.NewItemRepository(pool)
	if err != nil {
		log.Fatalf("dbcheck: init item repo: %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("dbcheck: count items: %v", err)
	}
	log.Printf("dbcheck: ok, %d stock items in store", n)
}

package main

import (
	"context"
	"log"

	"admin-system/pkg/config"
	"admin-system/pkg/database/postgresql"
	"admin-system/seeders"
)

func main() {
	cfg := config.New()
	ctx := context.Background()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	db, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := seeders.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("seeding complete")
}

// Command migrate applies goose migrations to the configured database.
//
// Usage:
//
//	migrate [--dir migrations] [--down]
//
// Requires DATABASE_DSN environment variable to be set.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	down := flag.Bool("down", false, "roll back the most recent migration instead of migrating up")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dir))
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	if *down {
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Printf("Rolled back %s.\n", result.Source.Path)
		return
	}

	results, err := provider.Up(ctx)
	if err != nil {
		log.Fatalf("migrate up: %v", err)
	}
	if len(results) == 0 {
		fmt.Println("Database is up to date.")
		return
	}
	for _, r := range results {
		fmt.Printf("Applied %s.\n", r.Source.Path)
	}
}

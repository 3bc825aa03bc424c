// Command seed inserts a small set of demo items and claims for local
// development. It is idempotent per run only in the sense that every run
// adds fresh rows; wipe the tables to start over.
//
// Requires DATABASE_DSN environment variable to be set.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedItem struct {
	title       string
	description string
	imageRef    string
	status      string
	location    string
	claims      []string
}

var fixtures = []seedItem{
	{
		title:       "Blue Hydro Flask",
		description: "Navy blue bottle with a dent near the base and a sticker of a mountain range.",
		imageRef:    "https://images.campus.example/bottle-01.jpg",
		status:      "FOUND",
		location:    "Main Library, 2nd floor",
		claims: []string{
			"That's mine, I left it at the study carrels on Tuesday.",
			"Has my initials on the bottom cap.",
		},
	},
	{
		title:       "TI-84 Graphing Calculator",
		description: "",
		imageRef:    "https://images.campus.example/calc-01.jpg",
		status:      "FOUND",
		location:    "Engineering Hall, room 204",
		claims:      []string{"Lost it after the statics midterm."},
	},
	{
		title:       "Black North Face Backpack",
		description: "Left side pocket has a broken zipper.",
		imageRef:    "https://images.campus.example/backpack-01.jpg",
		status:      "LOST",
		location:    "Somewhere between the gym and the dining hall",
	},
	{
		title:       "Dorm Key on Red Lanyard",
		description: "",
		imageRef:    "https://images.campus.example/keys-01.jpg",
		status:      "LOST",
	},
}

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	var items, claims int
	for _, f := range fixtures {
		itemID := uuid.New()
		var location *string
		if f.location != "" {
			location = &f.location
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO items (id, reporter_id, title, description, image_ref, status, location, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
			itemID, uuid.New(), f.title, f.description, f.imageRef, f.status, location,
		)
		if err != nil {
			log.Fatalf("insert item %q: %v", f.title, err)
		}
		items++

		for _, msg := range f.claims {
			_, err := pool.Exec(ctx,
				`INSERT INTO claims (id, item_id, claimant_id, message, status, created_at)
				 VALUES ($1, $2, $3, $4, 'PENDING', now())`,
				uuid.New(), itemID, uuid.New(), msg,
			)
			if err != nil {
				log.Fatalf("insert claim on %q: %v", f.title, err)
			}
			claims++
		}
	}

	fmt.Printf("Seeded %d items and %d claims.\n", items, claims)
}

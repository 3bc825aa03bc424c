// Command server runs the campus lost-and-found HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) with environment variable
// overrides; see internal/config.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shantanucs24-boop/campus-connect/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// Command mint-token issues a signed access token for local development
// and testing against a running server.
//
// Usage:
//
//	mint-token [--user <uuid>] [--role user|reviewer] [--ttl 24h]
//
// Requires AUTH_JWT_SECRET environment variable to match the server's.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/auth"
	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

func main() {
	userFlag := flag.String("user", "", "user UUID (random if omitted)")
	roleFlag := flag.String("role", "user", "role: user or reviewer")
	ttlFlag := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	issuerFlag := flag.String("issuer", "campus-connect", "token issuer")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("invalid --user: %v", err)
		}
		userID = parsed
	}

	role := domain.UserRole(*roleFlag)
	if !role.IsValid() {
		log.Fatalf("invalid --role %q: must be user or reviewer", *roleFlag)
	}

	token, err := auth.NewJWTManager(secret, *issuerFlag).GenerateAccessToken(userID, role, *ttlFlag)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Printf("user_id: %s\nrole:    %s\ntoken:   %s\n", userID, role, token)
}

// Command issuetoken mints a moderator bearer token for the admin delete
// endpoint. The signing secret comes from JWT_SECRET (or a .env file).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"communityguestbook/internal/adapters/auth"
)

func main() {
	subject := flag.String("subject", "", "moderator identifier to embed as the token subject")
	expiry := flag.Duration("expiry", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		log.Fatal("missing required -subject flag")
	}

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	token, err := auth.IssueModeratorToken(secret, *subject, *expiry)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	fmt.Println(token)
}

// Command token prints a signed bearer token for local use against the API.
//
//	go run ./cmd/token -email simon@example.com -name "Simon Holmes"
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"loc8r/internal/auth"
	"loc8r/internal/env"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "email claim, must match a row in users")
	name := flag.String("name", "", "display name claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "token: -email is required")
		flag.Usage()
		os.Exit(2)
	}

	secret := env.GetString("JWT_SECRET", "")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "token: JWT_SECRET is not set")
		os.Exit(1)
	}

	authenticator := auth.NewJWTAuthenticator(
		secret,
		env.GetString("JWT_AUDIENCE", "loc8r"),
		env.GetString("JWT_ISSUER", "loc8r"),
	)

	token, err := authenticator.GenerateToken(*email, *name, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

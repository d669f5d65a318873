package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	jwtsvc "picvault/internal/pkg/jwt"
)

// Mints a bearer token for the upload gate. Only useful when the API runs
// with UPLOAD_AUTH_SECRET set.
func main() {
	subject := flag.String("subject", "uploader", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("UPLOAD_AUTH_SECRET")
	if secret == "" {
		log.Fatal("UPLOAD_AUTH_SECRET is required")
	}

	token, err := jwtsvc.New(secret, *ttl).GenerateToken(*subject)
	if err != nil {
		log.Fatalf("token generation failed: %v", err)
	}

	fmt.Println(token)
}

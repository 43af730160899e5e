// Command token mints development bearer tokens for the Headlines API and
// can generate the RSA key pair the server verifies them with.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/forgo/headlines/api/internal/service"
	"github.com/forgo/headlines/api/pkg/jwt"
)

func main() {
	privateKeyPath := flag.String("key", "./keys/private.pem", "Path to JWT private key")
	publicKeyPath := flag.String("pub", "./keys/public.pem", "Path to write the public key with -gen-keys")
	genKeys := flag.Bool("gen-keys", false, "Generate a new RSA key pair and exit")
	userID := flag.String("user", "", "User ID for the token (required)")
	email := flag.String("email", "", "Email for the token")
	name := flag.String("name", "", "Display name for the token")
	issuer := flag.String("issuer", "headlines-api", "JWT issuer")
	expMins := flag.Int("exp", 60*24, "Token expiration in minutes (default: 1 day)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *genKeys {
		if err := jwt.GenerateKeyPair(*privateKeyPath, *publicKeyPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating keys: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s and %s\n", *privateKeyPath, *publicKeyPath)
		return
	}

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required")
		flag.Usage()
		os.Exit(2)
	}

	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: *privateKeyPath,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nGenerate keys first with: token -gen-keys\n")
		os.Exit(1)
	}

	tokenService := service.NewTokenService(service.TokenServiceConfig{JWTService: jwtService})
	issued, err := tokenService.IssueAccessToken(*userID, *email, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(issued)
		return
	}

	expTime := time.Now().Add(time.Duration(issued.ExpiresIn) * time.Second)
	fmt.Println("Access Token Generated")
	fmt.Println("======================")
	fmt.Printf("User ID:  %s\n", issued.UserID)
	fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(issued.AccessToken)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H 'Authorization: Bearer <token>' http://localhost:8080/api/user/favorites")
}

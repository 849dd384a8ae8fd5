// Package main provides a CLI tool for generating staff tokens for local
// development. These tokens use the dev signing key and will NOT work in
// production.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"quorum/internal/jwttoken"
	"quorum/internal/platform/config"
	rostermodels "quorum/internal/roster/models"
)

const (
	// Dev signing key - matches config.go when QUORUM_JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"

	defaultIssuerBaseURL = "http://localhost:8080"
	defaultAudience      = "quorum-console"
)

type tokenOutput struct {
	Token     string `json:"token"`
	Actor     string `json:"actor"`
	Role      string `json:"role"`
	ExpiresIn string `json:"expires_in"`
	Usage     string `json:"usage"`
}

func main() {
	actorID := flag.String("actor", "layla.o", "Staff username placed in the token subject")
	actorName := flag.String("name", "Layla Al Riyami", "Display name of the staff user")
	role := flag.String("role", string(rostermodels.RoleNormalUser), "Console role (SuperAdmin, Admin, NormalUser)")
	ttl := flag.Duration("ttl", config.TokenTTL, "Token time-to-live")
	asJSON := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	if !rostermodels.Role(*role).Valid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(1)
	}

	signingKey := os.Getenv("QUORUM_JWT_SIGNING_KEY")
	if signingKey == "" {
		signingKey = devSigningKey
	}

	svc := jwttoken.NewService(signingKey, defaultIssuerBaseURL, defaultAudience, *ttl)
	token, err := svc.GenerateActorToken(*actorID, *actorName, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "token generation failed: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		out := tokenOutput{
			Token:     token,
			Actor:     *actorID,
			Role:      *role,
			ExpiresIn: ttl.String(),
			Usage:     fmt.Sprintf("curl -H 'Authorization: Bearer %s' %s/event", token, defaultIssuerBaseURL),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
		return
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "\nactor=%s role=%s expires_in=%s\n", *actorID, *role, time.Duration(*ttl))
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-items-api/config"
	"github.com/oksasatya/go-items-api/internal/application"
	"github.com/oksasatya/go-items-api/internal/container"
	"github.com/oksasatya/go-items-api/pkg/helpers"
)

// seed registers one user through the same path as POST /register.
// Credentials come from SEED_USERNAME, SEED_PASSWORD and SEED_FULL_NAME.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("SEED_USERNAME and SEED_PASSWORD must be set")
	}

	ctx := context.Background()
	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}
	defer func() { _ = c.Close() }()

	svc := application.NewUserService(c.Users, c.Hasher, c.JWT, logger)
	u, err := svc.Register(ctx, application.RegisterInput{
		Username: username,
		Password: password,
		FullName: os.Getenv("SEED_FULL_NAME"),
	})
	if errors.Is(err, application.ErrDuplicateUser) {
		fmt.Printf("user %q already exists, nothing to do\n", username)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: username=%s driver=%s\n", u.Username, cfg.StoreDriver)
}

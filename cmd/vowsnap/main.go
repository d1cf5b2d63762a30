package main

import (
	"log"

	"github.com/vowsnap-dev/vowsnap/db"
	"github.com/vowsnap-dev/vowsnap/internal/auth"
	"github.com/vowsnap-dev/vowsnap/internal/config"
	"github.com/vowsnap-dev/vowsnap/internal/handlers"
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"github.com/vowsnap-dev/vowsnap/internal/reaper"
	"github.com/vowsnap-dev/vowsnap/internal/router"
	"github.com/vowsnap-dev/vowsnap/internal/store"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err = db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	stores := store.New(db.DB)
	verifier := auth.NewBcryptVerifier()

	handlers.Init(stores, verifier)

	if err = seedAdmin(stores, verifier, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	reaper.Initialize(stores, cfg.ReaperInterval, cfg.PresenceTTL)
	defer reaper.Shutdown()

	r := router.NewRouter()

	if err = r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdmin creates the bootstrap admin account when configured and no
// admin exists yet. Subsequent admins are created through the API.
func seedAdmin(stores *store.Store, verifier *auth.BcryptVerifier, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	count, err := stores.Users.Count()

	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	hash, err := verifier.Hash(cfg.AdminPassword)

	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         "admin",
	}

	if err := stores.Users.Create(&admin); err != nil {
		return err
	}

	log.Printf("Seeded admin user %s", cfg.AdminUsername)
	return nil
}

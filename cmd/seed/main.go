// Command seed initialises the users collection with a default admin
// account. Safe to run repeatedly: an existing admin account is left
// untouched.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/husen20ab/School/internal/core/domain"
	"github.com/husen20ab/School/internal/infrastructure/config"
	mongodb "github.com/husen20ab/School/internal/infrastructure/db/mongo"
	"github.com/husen20ab/School/pkg/logger"
)

const adminUsername = "admin"

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if cfg.SeedAdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer client.Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	repo := mongodb.NewUserRepository(db)

	if _, err := repo.FindByUsername(ctx, adminUsername); err == nil {
		log.Info().Str("username", adminUsername).Msg("admin account already exists, skipping")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	created, err := repo.Create(ctx, &domain.User{
		Username:     adminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("user_id", created.ID).Msg("admin account created")
}

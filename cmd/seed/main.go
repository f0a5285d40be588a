// Command seed bootstraps the initial admin account. It is idempotent: when
// an account with the configured email already exists, nothing is written.
package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/infrastructure/db/postgres"
	"github.com/quickbite/food-ordering-api/internal/pkg/config"
	"github.com/quickbite/food-ordering-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	seedCfg := config.LoadSeed()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if seedCfg.AdminEmail == "" || seedCfg.AdminPassword == "" {
		log.Fatal().Msg("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	users := postgres.NewUserRepository(pool)
	email := strings.ToLower(seedCfg.AdminEmail)

	if _, err := users.FindByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin account already present, nothing to do")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedCfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	admin, err := users.Create(ctx, &domain.User{
		FullName:     seedCfg.AdminName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent seeder may have won the race; that still counts as done.
		if errors.Is(err, domain.ErrEmailExists) {
			log.Info().Str("email", email).Msg("admin account already present, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Int64("id", admin.ID).Str("email", admin.Email).Msg("admin account created")
}

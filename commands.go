package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/Eursukkul/restaurant-service/config"
	"github.com/Eursukkul/restaurant-service/internal/auth"
	"github.com/Eursukkul/restaurant-service/internal/repository"
	"github.com/Eursukkul/restaurant-service/internal/seed"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/Eursukkul/restaurant-service/pkg/database"
	"gorm.io/gorm"
)

func migrate(db *gorm.DB) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	slog.Info("migrations applied")
	return nil
}

func seedDB(ctx context.Context, db *gorm.DB) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	sum, err := seed.Run(ctx, db, time.Now())
	if err != nil {
		return err
	}
	slog.Info("database populated",
		slog.Int64("menu_items", sum.MenuItems),
		slog.Int64("users", sum.Users),
		slog.Int64("bookings", sum.Bookings),
	)
	return nil
}

func createUser(ctx context.Context, db *gorm.DB, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("createuser", flag.ContinueOnError)
	username := fs.String("username", "", "login name (required)")
	password := fs.String("password", "", "password (required)")
	email := fs.String("email", "", "email address")
	staff := fs.Bool("staff", false, "grant staff access to every booking")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := service.NewAuthService(repository.NewUserRepository(db), auth.NewTokenManager(cfg.Auth))
	user, err := svc.CreateUser(ctx, service.UserInput{
		Username: *username,
		Password: *password,
		Email:    *email,
		Staff:    *staff,
	})
	if err != nil {
		return fmt.Errorf("createuser: %w", err)
	}

	slog.Info("user created", slog.Uint64("id", uint64(user.ID)), slog.String("username", user.Username), slog.Bool("staff", user.IsStaff))
	return nil
}

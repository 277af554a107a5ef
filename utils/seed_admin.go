package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/store"
)

// SeedAdminUser creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD on
// first boot. An existing account with that email is left alone.
func SeedAdminUser(ctx context.Context, users *store.Collection[models.User, *models.User]) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	pass := os.Getenv("ADMIN_PASSWORD")

	if email == "" || pass == "" {
		return fmt.Errorf("missing ADMIN_EMAIL or ADMIN_PASSWORD env vars")
	}

	existing, err := users.Filter(ctx, store.Query{"email": email}, "", 0)
	if err != nil {
		return fmt.Errorf("seed admin lookup failed: %w", err)
	}
	for _, u := range existing {
		if strings.EqualFold(u.Email, email) {
			fmt.Println("Admin user already exists:", email)
			return nil
		}
	}

	hash, err := HashPassword(pass)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = users.Create(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("seed admin insert failed: %w", err)
	}

	fmt.Println("Admin user seeded:", email)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/oceanhire/agency/db"
	"github.com/oceanhire/agency/internal/config"
	"github.com/oceanhire/agency/internal/db"
	"github.com/oceanhire/agency/internal/repository/sqlite"
	"github.com/oceanhire/agency/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Initializes the database and seeds the administrator credential from
// AGENCY_ADMIN_EMAIL / AGENCY_ADMIN_PASSWORD. Re-running updates the stored
// password hash for the same email.
func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	email := os.Getenv("AGENCY_ADMIN_EMAIL")
	password := os.Getenv("AGENCY_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("Database initialized. Set AGENCY_ADMIN_EMAIL and AGENCY_ADMIN_PASSWORD to seed the admin credential.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash error: %v\n", err)
		os.Exit(1)
	}

	repo := sqlite.New(database, nil)
	if _, err := repo.CreateAdmin(ctx, &models.Admin{Email: email, PasswordHash: string(hash)}); err != nil {
		fmt.Fprintf(os.Stderr, "Admin seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database initialized and admin credential seeded.")
}

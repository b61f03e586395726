package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"

	"school_equipment_lending/db"
	"school_equipment_lending/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapFirstAdmin seeds an admin account from the environment when the
// user table has none, so a fresh deployment can log in and start approving
// requests.
func BootstrapFirstAdmin(ctx context.Context, cfg Config, repo *db.Repo) {
	if cfg.BootstrapEmail == "" {
		return
	}
	n, err := repo.CountAdmins(ctx)
	if err != nil {
		log.Printf("bootstrap admin check failed: %v", err)
		return
	}
	if n > 0 {
		return
	}

	password := cfg.BootstrapPassword
	generated := false
	if password == "" {
		buf := make([]byte, 12)
		rand.Read(buf)
		password = hex.EncodeToString(buf)
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("bootstrap admin hash failed: %v", err)
		return
	}

	admin := &models.User{
		ID:           uuid.NewString(),
		Name:         cfg.BootstrapName,
		Email:        cfg.BootstrapEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := repo.CreateUser(ctx, admin); err != nil {
		log.Printf("bootstrap admin create failed: %v", err)
		return
	}

	log.Printf("[BOOTSTRAP] No admin found, created %s", cfg.BootstrapEmail)
	if generated {
		log.Printf("[BOOTSTRAP] One-time generated password: %s", password)
	}
}

package repositories

import (
	"context"
	"log"
	"time"

	"as-production-store/config"
	"as-production-store/models"
	"as-production-store/utils"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := config.DB.QueryRow(ctx,
		`SELECT id, email, password, role, created_at FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, encodedHash string) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, encodedHash, userID)
	return err
}

// SeedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD when
// no user with that email exists yet. Called once at startup.
func (r *UserRepository) SeedAdmin(ctx context.Context) {
	email := config.GetEnv("ADMIN_EMAIL", "")
	password := config.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return
	}

	var exists int
	config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&exists)
	if exists > 0 {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	_, err = config.DB.Exec(ctx,
		`INSERT INTO users (email, password, role, created_at) VALUES ($1, $2, 'admin', $3)`,
		email, hash, time.Now())
	if err != nil {
		log.Println("Failed to seed admin user:", err)
		return
	}
	log.Printf("Admin user %s created", email)
}

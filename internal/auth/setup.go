package auth

import (
	"fmt"

	"github.com/davetechinnovation/contact-backend/internal/db"
	"gorm.io/gorm"
)

// Init bootstraps the auth schema and user table. Idempotent; called once
// at startup.
func Init(conn *gorm.DB) error {
	if err := db.EnsureSchema(conn, "app_auth"); err != nil {
		return fmt.Errorf("ensuring schema app_auth: %w", err)
	}
	if err := conn.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("migrating users table: %w", err)
	}
	return nil
}

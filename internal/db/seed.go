package db

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/models"
)

// Seed creates the initial admin account when none exists. Credentials come
// from ADMIN_USER/ADMIN_PASSWORD with development fallbacks.
func Seed(conn *gorm.DB) {
	username := os.Getenv("ADMIN_USER")
	if username == "" {
		username = "admin"
	}
	var count int64
	conn.Model(&models.AdminAccount{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("ADMIN_PASSWORD not set; seeding development credentials admin/admin123")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	if err := conn.Create(&models.AdminAccount{Username: username, PasswordHash: hash}).Error; err != nil {
		log.Printf("seed admin: %v", err)
	}
}

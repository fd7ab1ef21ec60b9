package database

import (
	"errors"
	"fmt"
	"log"

	"artstore-backend/config"
	"artstore-backend/internal/domain/admins"
	"artstore-backend/internal/domain/catalog"
	"artstore-backend/internal/domain/feedback"
	"artstore-backend/internal/domain/orders"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	if err := SeedAdmin(DB, config.ADMIN_USERNAME, config.ADMIN_PASSWORD); err != nil {
		log.Fatal("❌ Admin seed error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Category{},
		&catalog.Artist{},
		&catalog.Artwork{},
		&orders.Order{},
		&feedback.Feedback{},
		&admins.Admin{},
	)
}

// SeedAdmin creates or refreshes the operator account from the environment.
// The password is re-hashed on every boot so rotating ADMIN_PASSWORD takes
// effect without touching the database.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("admin credentials not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var admin admins.Admin
	err = db.Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&admins.Admin{
			Username:     username,
			PasswordHash: string(hash),
		}).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&admin).Update("password_hash", string(hash)).Error
}

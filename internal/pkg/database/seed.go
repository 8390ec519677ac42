package database

import (
	"log"

	"gorm.io/gorm"

	"newsportal/app/models"
)

// SeedDefaultAccounts creates the initial admin and demo user accounts if
// the users table is still empty. Passwords are bcrypt-hashed at seed time.
func SeedDefaultAccounts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	const seedPassword = "Pass!12345"

	hash, err := models.HashPassword(seedPassword)
	if err != nil {
		return err
	}

	accounts := []models.User{
		{Name: "Admin", Email: "admin@admin.com", Password: hash, Role: models.RoleAdmin},
		{Name: "User", Email: "user@user.com", Password: hash, Role: models.RoleUser},
	}

	for i := range accounts {
		if err := db.Create(&accounts[i]).Error; err != nil {
			return err
		}
	}

	log.Println("seeded default admin and user accounts")
	return nil
}

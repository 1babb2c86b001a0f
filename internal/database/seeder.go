package database

import (
	"log"

	"financing-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// Seed akun petugas default untuk development lokal
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		log.Println("Users sudah ada, skip seeding.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Gagal hash password seeder:", err)
	}

	admin := model.User{
		Name:     "Admin Pembiayaan",
		Username: "admin",
		Email:    "admin@example.com",
		Phone:    "081234567890",
		Password: string(hashedPassword),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Gagal seed user admin:", err)
	}

	log.Println("User admin berhasil di-seed (username: admin, password: password)")
}

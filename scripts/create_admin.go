package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Mirrors internal/models.User. Kept standalone so the script runs
// against any pizza-shop database file without importing the app.
type User struct {
	ID       string `gorm:"primaryKey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string
	Role     string `gorm:"default:'USER'"`
}

func main() {
	// Parse command line flags
	email := flag.String("email", "admin@pizzashop.com", "Admin email")
	password := flag.String("password", "admin123", "Admin password")
	dbPath := flag.String("db", "pizza-shop.sqlite", "Path to the SQLite database")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Promote an existing account instead of duplicating it
	var existing User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		if existing.Role == "ADMIN" {
			fmt.Printf("Admin already exists: %s\n", existing.Email)
			return
		}
		if err := db.Model(&existing).Update("role", "ADMIN").Error; err != nil {
			log.Fatal("Failed to promote user:", err)
		}
		fmt.Printf("Promoted %s to ADMIN\n", existing.Email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := User{
		ID:       uuid.NewString(),
		Email:    *email,
		Password: string(hash),
		Name:     "Admin User",
		Role:     "ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	fmt.Printf("Admin user created: %s\n", admin.Email)
	fmt.Println("\nLog in with:")
	fmt.Printf("curl -X POST http://localhost:8080/api/auth/login \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"email\": %q, \"password\": %q}'\n", *email, *password)
}

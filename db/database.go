package db

import (
	"fmt"
	"log"

	"github.com/devshare/devshare-go/config"
	"github.com/devshare/devshare-go/internal/domain/comment"
	"github.com/devshare/devshare-go/internal/domain/notification"
	"github.com/devshare/devshare-go/internal/domain/project"
	"github.com/devshare/devshare-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate runs schema migration for every aggregate.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&notification.Notification{},
		&comment.Comment{},
	)
}

// InitWithGormDB injects an existing connection (used by tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

package config

import (
	"github.com/KeyongL/lipid-guard/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *Config) {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		Log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.FoodItem{},
		&models.LogEntry{},
	)
	if err != nil {
		Log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// One-shot loader for the bundled food library seed file.
package main

import (
	"github.com/KeyongL/lipid-guard/config"
	"github.com/KeyongL/lipid-guard/models"
	"github.com/KeyongL/lipid-guard/setup"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg)
	config.InitDB(cfg)

	config.Log.Info("Loading seed data into food_library...")
	if err := config.DB.Exec(setup.SeedSQL).Error; err != nil {
		config.Log.Fatalf("seed failed: %v", err)
	}

	var count int64
	if err := config.DB.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		config.Log.Fatalf("failed to verify seed: %v", err)
	}
	config.Log.Infof("Done. food_library now holds %d foods.", count)
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KeyongL/lipid-guard/config"
	"github.com/KeyongL/lipid-guard/models"

	"gorm.io/gorm"
)

func ListFoods() ([]models.FoodItem, error) {
	foods := []models.FoodItem{}
	err := config.DB.Order("id ASC").Find(&foods).Error
	return foods, err
}

// SearchFoods matches name as a case-insensitive substring. An empty query
// returns an empty set, not the full library — callers wanting everything
// use ListFoods.
func SearchFoods(query string) ([]models.FoodItem, error) {
	foods := []models.FoodItem{}
	if query == "" {
		return foods, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"
	err := config.DB.
		Where("LOWER(name) LIKE ?", pattern).
		Order("id ASC").
		Find(&foods).Error
	return foods, err
}

func AddFood(name string, fatPer100g float64, cholesterolMg int, riskLevel string) (*models.FoodItem, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if fatPer100g < 0 || cholesterolMg < 0 {
		return nil, fmt.Errorf("%w: nutrient values must be non-negative", ErrValidation)
	}
	if !models.ValidRiskLevel(riskLevel) {
		return nil, fmt.Errorf("%w: risk_level must be LOW, MEDIUM or HIGH", ErrValidation)
	}

	food := &models.FoodItem{
		Name:          name,
		FatPer100g:    fatPer100g,
		CholesterolMg: cholesterolMg,
		RiskLevel:     riskLevel,
	}
	if err := config.DB.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// DeleteFood removes a food and every log entry referencing it. The two
// deletes run in one transaction so a failure cannot strand logs without
// their food or the reverse.
func DeleteFood(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&food, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("food_id = ?", id).Delete(&models.LogEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FoodItem{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &food, nil
}

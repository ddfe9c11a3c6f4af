package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/KeyongL/lipid-guard/config"
	"github.com/KeyongL/lipid-guard/services"

	"github.com/gin-gonic/gin"
)

// GET /api/foods
func ListFoods(c *gin.Context) {
	foods, err := services.ListFoods()
	if err != nil {
		config.Log.Errorf("Error fetching foods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /api/foods/search?q=butter
func SearchFoods(c *gin.Context) {
	foods, err := services.SearchFoods(c.Query("q"))
	if err != nil {
		config.Log.Errorf("Error searching foods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// POST /api/foods
func AddFood(c *gin.Context) {
	// Pointer numerics so an explicit zero passes required.
	var body struct {
		Name          string   `json:"name" binding:"required"`
		FatPer100g    *float64 `json:"fat_per_100g" binding:"required,gte=0"`
		CholesterolMg *int     `json:"cholesterol_mg" binding:"required,gte=0"`
		RiskLevel     string   `json:"risk_level" binding:"required,oneof=LOW MEDIUM HIGH"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := services.AddFood(body.Name, *body.FatPer100g, *body.CholesterolMg, body.RiskLevel)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		config.Log.Errorf("Error adding food: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food"})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// DELETE /api/foods/:id — cascades to the food's log entries.
func DeleteFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	food, err := services.DeleteFood(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		config.Log.Errorf("Error deleting food: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete food"})
		return
	}
	c.JSON(http.StatusOK, food)
}

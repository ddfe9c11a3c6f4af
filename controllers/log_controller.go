package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/KeyongL/lipid-guard/config"
	"github.com/KeyongL/lipid-guard/services"

	"github.com/gin-gonic/gin"
)

// GET /api/logs — newest first
func ListLogs(c *gin.Context) {
	logs, err := services.ListLogs()
	if err != nil {
		config.Log.Errorf("Error fetching logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// POST /api/logs
func AddLog(c *gin.Context) {
	var body struct {
		FoodID    uint     `json:"food_id" binding:"required"`
		ActualFat *float64 `json:"actual_fat" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddLog(body.FoodID, *body.ActualFat)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		config.Log.Errorf("Error creating log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create log"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DELETE /api/logs/:id
func DeleteLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	entry, err := services.DeleteLog(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
			return
		}
		config.Log.Errorf("Error deleting log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete log"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /api/summary — today's total against the fixed daily limit.
func GetSummary(c *gin.Context) {
	summary, err := services.GetSummary()
	if err != nil {
		config.Log.Errorf("Error fetching summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/KeyongL/lipid-guard/config"
	"github.com/KeyongL/lipid-guard/models"

	"gorm.io/gorm"
)

// DailyLimitGrams is the fixed saturated-fat budget the dashboard compares
// today's total against. Not configurable or persisted.
const DailyLimitGrams = 20.0

type SummaryResponse struct {
	TotalFat   float64 `json:"total_fat"`
	DailyLimit float64 `json:"daily_limit"`
}

func ListLogs() ([]models.LogEntry, error) {
	logs := []models.LogEntry{}
	err := config.DB.
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

// AddLog stores a consumption event. The log date and creation timestamp
// come from the server clock, never from the caller.
func AddLog(foodID uint, actualFat float64) (*models.LogEntry, error) {
	if actualFat < 0 {
		return nil, fmt.Errorf("%w: actual_fat must be non-negative", ErrValidation)
	}
	now := time.Now()
	entry := &models.LogEntry{
		FoodID:    foodID,
		ActualFat: actualFat,
		LogDate:   startOfDay(now),
		CreatedAt: now,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteLog(id uint) (*models.LogEntry, error) {
	var entry models.LogEntry
	if err := config.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := config.DB.Delete(&models.LogEntry{}, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// TodaysTotal sums actual_fat over entries dated today. Recomputed from
// scratch on every call; returns 0 when there are no matching rows.
func TodaysTotal() (float64, error) {
	start := startOfDay(time.Now())
	end := start.Add(24 * time.Hour)

	var total float64
	err := config.DB.Model(&models.LogEntry{}).
		Select("COALESCE(SUM(actual_fat), 0)").
		Where("log_date >= ? AND log_date < ?", start, end).
		Scan(&total).Error
	return total, err
}

func GetSummary() (*SummaryResponse, error) {
	total, err := TodaysTotal()
	if err != nil {
		return nil, err
	}
	return &SummaryResponse{TotalFat: total, DailyLimit: DailyLimitGrams}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

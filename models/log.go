package models

import "time"

// One consumption event. ActualFat is the grams of saturated fat for the
// logged portion, precomputed by the caller from the food's per-100g value.
// LogDate buckets the entry into a calendar day; CreatedAt drives the
// newest-first display ordering.
type LogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FoodID    uint      `gorm:"index;not null" json:"food_id"`
	ActualFat float64   `gorm:"not null" json:"actual_fat"`
	LogDate   time.Time `gorm:"index;not null" json:"log_date"`
	CreatedAt time.Time `json:"created_at"`
}

func (LogEntry) TableName() string {
	return "daily_logs"
}

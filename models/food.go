package models

// Risk levels used for display grouping in the UI. The column itself is
// plain text so seeded or migrated rows with other values still load.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

func ValidRiskLevel(level string) bool {
	switch level {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// A curated food and its saturated-fat profile per 100g.
type FoodItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	FatPer100g    float64 `gorm:"column:fat_per_100g;not null" json:"fat_per_100g"`
	CholesterolMg int     `gorm:"not null" json:"cholesterol_mg"`
	RiskLevel     string  `gorm:"type:varchar(16);not null" json:"risk_level"`
}

func (FoodItem) TableName() string {
	return "food_library"
}

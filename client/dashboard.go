package client

import "github.com/KeyongL/lipid-guard/models"

// Progress bar colors, keyed off the consumed share of the daily limit.
const (
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

// ProgressPercent is the consumed share of the daily limit, capped at 100
// so the bar never overflows.
func (c *Client) ProgressPercent() float64 {
	if c.summary.DailyLimit <= 0 {
		return 0
	}
	pct := c.summary.TotalFat / c.summary.DailyLimit * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func (c *Client) ProgressColor() string {
	pct := c.ProgressPercent()
	switch {
	case pct > 75:
		return ColorRed
	case pct > 50:
		return ColorYellow
	default:
		return ColorGreen
	}
}

func (c *Client) OverLimit() bool {
	return c.summary.TotalFat > c.summary.DailyLimit
}

// GroupByRisk buckets the held foods by risk level for the library view.
// Levels outside the known set get their own bucket rather than being
// dropped.
func (c *Client) GroupByRisk() map[string][]models.FoodItem {
	groups := make(map[string][]models.FoodItem)
	for _, f := range c.foods {
		groups[f.RiskLevel] = append(groups[f.RiskLevel], f)
	}
	return groups
}

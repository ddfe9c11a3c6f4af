package client

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/KeyongL/lipid-guard/config"
	"github.com/KeyongL/lipid-guard/models"
	"github.com/KeyongL/lipid-guard/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupClient(t *testing.T) *Client {
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:client_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FoodItem{}, &models.LogEntry{}))
	config.DB = db

	srv := httptest.NewServer(routes.SetupRouter(&config.Config{Env: "development"}))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestRefreshAndSummary(t *testing.T) {
	c := setupClient(t)

	butter, err := c.AddFood("Butter", 51, 215, models.RiskHigh)
	require.NoError(t, err)
	_, err = c.AddLog(*butter, 50) // 50g of butter → 25.5g saturated fat
	require.NoError(t, err)

	require.NoError(t, c.Refresh())
	assert.Len(t, c.Foods(), 1)
	require.Len(t, c.Logs(), 1)
	assert.InDelta(t, 25.5, c.Logs()[0].ActualFat, 1e-9)

	// Server figure, not the local rederivation, is what the dashboard sees
	assert.InDelta(t, 25.5, c.Summary().TotalFat, 1e-9)
	assert.Equal(t, 20.0, c.Summary().DailyLimit)
	assert.True(t, c.OverLimit())
	assert.Equal(t, 100.0, c.ProgressPercent())
	assert.Equal(t, ColorRed, c.ProgressColor())
}

func TestProgressColorThresholds(t *testing.T) {
	c := setupClient(t)

	oil, err := c.AddFood("Olive oil", 10, 0, models.RiskLow)
	require.NoError(t, err)

	// 0% used
	require.NoError(t, c.Refresh())
	assert.Equal(t, ColorGreen, c.ProgressColor())
	assert.False(t, c.OverLimit())

	// 5g / 20g = 25% → still green
	_, err = c.AddLog(*oil, 50)
	require.NoError(t, err)
	assert.Equal(t, ColorGreen, c.ProgressColor())

	// 11g / 20g = 55% → yellow
	_, err = c.AddLog(*oil, 60)
	require.NoError(t, err)
	assert.Equal(t, ColorYellow, c.ProgressColor())

	// 16g / 20g = 80% → red, but not yet over the limit
	_, err = c.AddLog(*oil, 50)
	require.NoError(t, err)
	assert.Equal(t, ColorRed, c.ProgressColor())
	assert.False(t, c.OverLimit())
}

func TestDeleteLogRecomputesSummary(t *testing.T) {
	c := setupClient(t)

	cheese, err := c.AddFood("Cheddar cheese", 21, 105, models.RiskHigh)
	require.NoError(t, err)
	entry, err := c.AddLog(*cheese, 100)
	require.NoError(t, err)
	assert.InDelta(t, 21.0, c.Summary().TotalFat, 1e-9)

	require.NoError(t, c.DeleteLog(entry.ID))
	assert.Empty(t, c.Logs())
	assert.Zero(t, c.Summary().TotalFat)

	err = c.DeleteLog(entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFoodCascadesLocally(t *testing.T) {
	c := setupClient(t)

	bacon, err := c.AddFood("Bacon", 14, 110, models.RiskHigh)
	require.NoError(t, err)
	tofu, err := c.AddFood("Tofu", 1.2, 0, models.RiskLow)
	require.NoError(t, err)
	_, err = c.AddLog(*bacon, 100)
	require.NoError(t, err)
	_, err = c.AddLog(*tofu, 100)
	require.NoError(t, err)

	require.NoError(t, c.DeleteFood(bacon.ID))
	require.Len(t, c.Foods(), 1)
	assert.Equal(t, tofu.ID, c.Foods()[0].ID)
	require.Len(t, c.Logs(), 1)
	assert.Equal(t, tofu.ID, c.Logs()[0].FoodID)
	assert.InDelta(t, 1.2, c.Summary().TotalFat, 1e-9)

	err = c.DeleteFood(bacon.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetQueryToggle(t *testing.T) {
	c := setupClient(t)

	_, err := c.AddFood("Butter", 51, 215, models.RiskHigh)
	require.NoError(t, err)
	_, err = c.AddFood("Peanut Butter", 10, 0, models.RiskMedium)
	require.NoError(t, err)
	_, err = c.AddFood("Tofu", 1.2, 0, models.RiskLow)
	require.NoError(t, err)

	require.NoError(t, c.SetQuery("butter"))
	assert.Len(t, c.Foods(), 2)

	// Emptied search box falls back to the full library
	require.NoError(t, c.SetQuery(""))
	assert.Len(t, c.Foods(), 3)
}

func TestGroupByRisk(t *testing.T) {
	c := setupClient(t)

	_, err := c.AddFood("Butter", 51, 215, models.RiskHigh)
	require.NoError(t, err)
	_, err = c.AddFood("Bacon", 14, 110, models.RiskHigh)
	require.NoError(t, err)
	_, err = c.AddFood("Eggs", 3.1, 372, models.RiskMedium)
	require.NoError(t, err)
	_, err = c.AddFood("Tofu", 1.2, 0, models.RiskLow)
	require.NoError(t, err)

	groups := c.GroupByRisk()
	assert.Len(t, groups[models.RiskHigh], 2)
	assert.Len(t, groups[models.RiskMedium], 1)
	assert.Len(t, groups[models.RiskLow], 1)
}

func TestLocalTodayTotalFallback(t *testing.T) {
	c := setupClient(t)

	fish, err := c.AddFood("Salmon", 3.1, 55, models.RiskLow)
	require.NoError(t, err)
	_, err = c.AddLog(*fish, 200)
	require.NoError(t, err)
	require.NoError(t, c.Refresh())

	assert.InDelta(t, c.Summary().TotalFat, c.LocalTodayTotal(), 1e-9)
}

func TestErrNotFoundIsDistinguishable(t *testing.T) {
	c := setupClient(t)

	err := c.DeleteFood(9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

// Package client is a Go client for the LipidGuard API. It mirrors the web
// UI: it holds the fetched foods, logs and summary in memory and derives
// the dashboard figures from them. The server's summary endpoint is the
// source of truth for today's total; the locally derived total is only a
// fallback when that fetch fails.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/KeyongL/lipid-guard/models"
	"github.com/KeyongL/lipid-guard/services"
)

// ErrNotFound reports a 404 from the API (delete target already gone).
var ErrNotFound = errors.New("not found")

type Client struct {
	baseURL string
	http    *http.Client

	foods   []models.FoodItem
	logs    []models.LogEntry
	summary services.SummaryResponse
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		summary: services.SummaryResponse{DailyLimit: services.DailyLimitGrams},
	}
}

// Refresh loads foods and logs concurrently, then the summary. A failed
// summary fetch falls back to the total derived from the held logs.
func (c *Client) Refresh() error {
	var wg sync.WaitGroup
	var foodsErr, logsErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		foodsErr = c.getJSON("/api/foods", &c.foods)
	}()
	go func() {
		defer wg.Done()
		logsErr = c.getJSON("/api/logs", &c.logs)
	}()
	wg.Wait()

	if foodsErr != nil {
		return foodsErr
	}
	if logsErr != nil {
		return logsErr
	}
	c.refreshSummary()
	return nil
}

func (c *Client) Foods() []models.FoodItem { return c.foods }

func (c *Client) Logs() []models.LogEntry { return c.logs }

func (c *Client) Summary() services.SummaryResponse { return c.summary }

// SetQuery drives the library view's fetch-or-search toggle: a non-empty
// query hits the search endpoint, an emptied one falls back to the full
// list.
func (c *Client) SetQuery(query string) error {
	if query == "" {
		return c.getJSON("/api/foods", &c.foods)
	}
	return c.getJSON("/api/foods/search?q="+url.QueryEscape(query), &c.foods)
}

func (c *Client) AddFood(name string, fatPer100g float64, cholesterolMg int, riskLevel string) (*models.FoodItem, error) {
	body := map[string]interface{}{
		"name":           name,
		"fat_per_100g":   fatPer100g,
		"cholesterol_mg": cholesterolMg,
		"risk_level":     riskLevel,
	}
	var food models.FoodItem
	if err := c.postJSON("/api/foods", body, &food); err != nil {
		return nil, err
	}
	c.foods = append(c.foods, food)
	return &food, nil
}

// DeleteFood drops the food and, matching the server-side cascade, every
// held log referencing it, then refreshes the summary.
func (c *Client) DeleteFood(id uint) error {
	if err := c.delete(fmt.Sprintf("/api/foods/%d", id)); err != nil {
		return err
	}
	kept := c.foods[:0]
	for _, f := range c.foods {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	c.foods = kept

	remaining := c.logs[:0]
	for _, l := range c.logs {
		if l.FoodID != id {
			remaining = append(remaining, l)
		}
	}
	c.logs = remaining
	c.refreshSummary()
	return nil
}

// AddLog records a consumption event. ActualFat is computed here from the
// food's per-100g value and the eaten quantity in grams; the server stores
// it as sent.
func (c *Client) AddLog(food models.FoodItem, quantityGrams float64) (*models.LogEntry, error) {
	actualFat := food.FatPer100g * quantityGrams / 100
	body := map[string]interface{}{
		"food_id":    food.ID,
		"actual_fat": actualFat,
	}
	var entry models.LogEntry
	if err := c.postJSON("/api/logs", body, &entry); err != nil {
		return nil, err
	}
	c.logs = append([]models.LogEntry{entry}, c.logs...)
	c.refreshSummary()
	return &entry, nil
}

func (c *Client) DeleteLog(id uint) error {
	if err := c.delete(fmt.Sprintf("/api/logs/%d", id)); err != nil {
		return err
	}
	kept := c.logs[:0]
	for _, l := range c.logs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	c.logs = kept
	c.refreshSummary()
	return nil
}

// LocalTodayTotal derives today's total from the held logs using this
// process's clock. Display fallback only; the server figure wins.
func (c *Client) LocalTodayTotal() float64 {
	now := time.Now()
	var total float64
	for _, l := range c.logs {
		y1, m1, d1 := l.LogDate.Year(), l.LogDate.Month(), l.LogDate.Day()
		y2, m2, d2 := now.Year(), now.Month(), now.Day()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			total += l.ActualFat
		}
	}
	return total
}

func (c *Client) refreshSummary() {
	var s services.SummaryResponse
	if err := c.getJSON("/api/summary", &s); err != nil {
		c.summary = services.SummaryResponse{
			TotalFat:   c.LocalTodayTotal(),
			DailyLimit: services.DailyLimitGrams,
		}
		return
	}
	c.summary = s
}

// --- HTTP plumbing ---

func (c *Client) getJSON(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	return decode(resp, path, out)
}

func (c *Client) postJSON(path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", path, err)
	}
	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	return decode(resp, path, out)
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	return decode(resp, path, nil)
}

func decode(resp *http.Response, path string, out interface{}) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error %d on %s: %s", resp.StatusCode, path, string(body))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s JSON: %w", path, err)
	}
	return nil
}

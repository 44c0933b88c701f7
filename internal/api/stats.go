package api

import (
	"fmt"
	"net/url"
	"time"
)

// GetStats returns the dashboard summary.
func (c *Client) GetStats() (*Stats, error) {
	var stats Stats
	if err := c.Get("/api/stats", &stats); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}

// GetWeeklyStats returns seven days of completion percentages starting at startDate.
func (c *Client) GetWeeklyStats(startDate string) ([]DayPercentage, error) {
	days := make([]DayPercentage, 0, 7)
	query := url.Values{}
	query.Set("start_date", startDate)
	if err := c.GetWithQuery("/api/stats/weekly", query, &days); err != nil {
		return nil, fmt.Errorf("failed to get weekly stats from %s: %w", startDate, err)
	}
	return days, nil
}

// GetAnalytics returns the all-time analytics summary.
func (c *Client) GetAnalytics() (*Analytics, error) {
	var a Analytics
	if err := c.Get("/api/reports/analytics", &a); err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}
	return &a, nil
}

// GetMonthlyTrends returns the per-day series for a month.
func (c *Client) GetMonthlyTrends(year int, month time.Month) (*MonthlyTrends, error) {
	var m MonthlyTrends
	path := fmt.Sprintf("/api/reports/monthly/%d/%d", year, int(month))
	if err := c.Get(path, &m); err != nil {
		return nil, fmt.Errorf("failed to get monthly trends %d-%02d: %w", year, int(month), err)
	}
	return &m, nil
}

// GetDailyReport returns the breakdown for one day.
func (c *Client) GetDailyReport(date string) (*DailyReport, error) {
	var r DailyReport
	if err := c.Get("/api/reports/daily/"+url.PathEscape(date), &r); err != nil {
		return nil, fmt.Errorf("failed to get daily report for %s: %w", date, err)
	}
	return &r, nil
}

// GetSetting reads a server-side setting.
func (c *Client) GetSetting(key string) (string, error) {
	var s Setting
	if err := c.Get("/api/settings/"+url.PathEscape(key), &s); err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return s.Value, nil
}

// SetSetting writes a server-side setting.
func (c *Client) SetSetting(key, value string) error {
	var resp SuccessResponse
	body := map[string]string{"value": value}
	if err := c.Post("/api/settings/"+url.PathEscape(key), body, &resp); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

package api

import (
	"context"
	"time"

	"stockpilot/app/models"
	"stockpilot/pkg/http"
	"stockpilot/pkg/metrics"
)

// GetKPIs fetches the dashboard headline numbers.
func (c *Client) GetKPIs(ctx context.Context) (models.KPIs, error) {
	var kpis models.KPIs
	req := http.Get(c.url("/dashboard/kpis")).WithContext(ctx).Retry(3, 500*time.Millisecond)
	if err := c.send("dashboard.kpis", req, &kpis); err != nil {
		return models.KPIs{}, err
	}
	return kpis, nil
}

// GetLowStockAlerts fetches the critical-stock card entries.
func (c *Client) GetLowStockAlerts(ctx context.Context) ([]models.LowStockAlert, error) {
	var alerts []models.LowStockAlert
	req := http.Get(c.url("/dashboard/low-stock-alerts")).WithContext(ctx).Retry(3, 500*time.Millisecond)
	if err := c.send("dashboard.low_stock_alerts", req, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// GetPriorityTasks fetches the priority-tasks card entries.
func (c *Client) GetPriorityTasks(ctx context.Context) ([]models.PriorityTask, error) {
	var tasks []models.PriorityTask
	req := http.Get(c.url("/dashboard/priority-tasks")).WithContext(ctx).Retry(3, 500*time.Millisecond)
	if err := c.send("dashboard.priority_tasks", req, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateReorder raises a purchase order for a low-stock product.
func (c *Client) CreateReorder(ctx context.Context, in models.ReorderRequest) (models.ReorderResponse, error) {
	var resp models.ReorderResponse
	req := http.Post(c.url("/reorders/reorder")).WithContext(ctx).Body(in)
	if err := c.send("reorders.create", req, &resp); err != nil {
		return models.ReorderResponse{}, err
	}
	metrics.ReordersCreated.Inc()
	return resp, nil
}

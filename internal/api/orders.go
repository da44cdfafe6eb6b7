package api

import (
	"context"
	"fmt"
	"time"

	"stockpilot/app/models"
	"stockpilot/pkg/http"
)

// ListOrders fetches the order list. Item details are not included; fetch
// them per-order with GetOrderDetails when a detail view opens.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	req := http.Get(c.url("/orders")).WithContext(ctx).Retry(3, 500*time.Millisecond)
	if err := c.send("orders.list", req, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderDetails fetches one order with its customer fields and line items.
func (c *Client) GetOrderDetails(ctx context.Context, id int64) (models.OrderDetails, error) {
	var details models.OrderDetails
	req := http.Get(c.url(fmt.Sprintf("/orders/%d", id))).WithContext(ctx)
	if err := c.send("orders.details", req, &details); err != nil {
		return models.OrderDetails{}, err
	}
	return details, nil
}

// UpdateOrderStatus relabels an order and returns its updated state. Status
// is the only order field the client can change.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error) {
	var updated models.Order
	req := http.Patch(c.url(fmt.Sprintf("/orders/%d", id))).
		WithContext(ctx).
		Body(map[string]models.OrderStatus{"status": status})
	if err := c.send("orders.update_status", req, &updated); err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

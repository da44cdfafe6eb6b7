package services

import (
	"cmp"
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"stockpilot/app/models"
	"stockpilot/internal/api"
	"stockpilot/pkg/logger"
	"stockpilot/pkg/tableview"
)

// OrderService drives the orders screen. Orders are read-mostly: the only
// mutation is relabeling the status, and details are fetched lazily when a
// detail view opens.
type OrderService struct {
	client    *api.Client
	store     *tableview.Store[models.Order]
	view      *tableview.View[models.Order]
	selection *tableview.Selection
	guard     *guard
	closed    atomic.Bool
}

func orderID(o models.Order) string { return o.Key() }

// NewOrderService wires the orders store, view and selection.
func NewOrderService(client *api.Client) *OrderService {
	store := tableview.NewStore(orderID)
	view := tableview.NewView(store, tableview.Config[models.Order]{
		ID: orderID,
		// Search matches the bare id digits, not the "#ORD-" display form:
		// the reference prefix would make every order match "ord".
		SearchFields: []func(models.Order) string{
			func(o models.Order) string { return o.CustomerName },
			func(o models.Order) string { return o.Key() },
		},
		Sorters: map[string]tableview.Comparator[models.Order]{
			"id":       func(a, b models.Order) int { return cmp.Compare(a.ID, b.ID) },
			"customer": func(a, b models.Order) int { return tableview.CompareText(a.CustomerName, b.CustomerName) },
			"date": func(a, b models.Order) int {
				return tableview.CompareTime(a.OrderDate.Time, b.OrderDate.Time)
			},
			"total": func(a, b models.Order) int {
				switch {
				case a.Total < b.Total:
					return -1
				case a.Total > b.Total:
					return 1
				default:
					return 0
				}
			},
			"status": func(a, b models.Order) int {
				return tableview.CompareText(string(a.Status), string(b.Status))
			},
		},
		Filters: map[string]tableview.FilterFunc[models.Order]{
			"status": func(o models.Order, value string) bool {
				return strings.EqualFold(string(o.Status), value)
			},
		},
		DefaultSort: "date",
		DefaultDesc: true,
		PageSize:    8,
	})
	return &OrderService{
		client:    client,
		store:     store,
		view:      view,
		selection: tableview.NewSelection(),
		guard:     newGuard("order"),
	}
}

func (s *OrderService) View() *tableview.View[models.Order]   { return s.view }
func (s *OrderService) Selection() *tableview.Selection       { return s.selection }
func (s *OrderService) Store() *tableview.Store[models.Order] { return s.store }
func (s *OrderService) Close()                                { s.closed.Store(true) }

// Load fetches the order list and resets the store.
func (s *OrderService) Load(ctx context.Context) error {
	orders, err := s.client.ListOrders(ctx)
	if err != nil {
		return err
	}
	if s.closed.Load() {
		logger.Debug("orders: discarding load result after close")
		return nil
	}
	s.store.Reset(orders)
	s.selection.Clear()
	return nil
}

// Details fetches one order's full record. The result is not stored; the
// list row keeps its summary shape.
func (s *OrderService) Details(ctx context.Context, id int64) (models.OrderDetails, error) {
	return s.client.GetOrderDetails(ctx, id)
}

// ChangeStatus relabels an order. Any known status may be set from any
// other. The stored row is replaced with the server-confirmed record, so
// every non-status field survives exactly as the backend returned it; on
// failure the row is untouched.
func (s *OrderService) ChangeStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error) {
	if !models.ValidOrderStatus(string(status)) {
		return models.Order{}, fmt.Errorf("unknown order status %q", status)
	}
	release, err := s.guard.begin(models.Order{ID: id}.Key())
	if err != nil {
		return models.Order{}, err
	}
	defer release()

	updated, err := s.client.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return models.Order{}, err
	}
	s.store.Replace(updated)
	return updated, nil
}

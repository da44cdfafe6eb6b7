package services

import (
	"context"
	"strconv"
	"sync"

	"stockpilot/app/models"
	"stockpilot/internal/api"
	"stockpilot/pkg/logger"
)

// Dashboard is the landing screen's data: three independently fetched cards.
// A card that failed to load carries its error in Errors under its name and
// keeps its zero value; the other cards render normally.
type Dashboard struct {
	KPIs   models.KPIs
	Alerts []models.LowStockAlert
	Tasks  []models.PriorityTask
	Errors map[string]error
}

// Failed reports whether the named card ("kpis", "alerts", "tasks") failed.
func (d *Dashboard) Failed(card string) bool {
	_, ok := d.Errors[card]
	return ok
}

// DashboardService drives the landing screen and the reorder action.
type DashboardService struct {
	client *api.Client
	guard  *guard
}

// NewDashboardService wires the dashboard onto the API client.
func NewDashboardService(client *api.Client) *DashboardService {
	return &DashboardService{client: client, guard: newGuard("reorder")}
}

// Load fetches the three cards concurrently. Each card fails independently;
// Load itself only errors when the context is already dead.
func (s *DashboardService) Load(ctx context.Context) (*Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := &Dashboard{Errors: make(map[string]error)}
	var mu sync.Mutex
	fail := func(card string, err error) {
		mu.Lock()
		defer mu.Unlock()
		d.Errors[card] = err
		logger.Warn("dashboard: card failed to load", "card", card, "error", err)
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		kpis, err := s.client.GetKPIs(ctx)
		if err != nil {
			fail("kpis", err)
			return
		}
		d.KPIs = kpis
	}()
	go func() {
		defer wg.Done()
		alerts, err := s.client.GetLowStockAlerts(ctx)
		if err != nil {
			fail("alerts", err)
			return
		}
		d.Alerts = alerts
	}()
	go func() {
		defer wg.Done()
		tasks, err := s.client.GetPriorityTasks(ctx)
		if err != nil {
			fail("tasks", err)
			return
		}
		d.Tasks = tasks
	}()
	wg.Wait()

	return d, nil
}

// Reorder raises a purchase order for a low-stock alert, ordering the
// deficit against the reorder point (or a full reorder-point's worth when
// stock recovered in the meantime). Repeated clicks on the same alert are
// rejected while the first reorder is in flight.
func (s *DashboardService) Reorder(ctx context.Context, alert models.LowStockAlert) (models.ReorderResponse, error) {
	release, err := s.guard.begin(strconv.FormatInt(alert.ID, 10))
	if err != nil {
		return models.ReorderResponse{}, err
	}
	defer release()

	return s.client.CreateReorder(ctx, models.ReorderRequest{
		ProductID: alert.ID,
		Quantity:  alert.ReorderQuantity(),
	})
}

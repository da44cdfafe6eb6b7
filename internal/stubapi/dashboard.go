package stubapi

import (
	"fmt"
	"net/http"
	"time"

	"stockpilot/app/models"
	"stockpilot/pkg/collection"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// dashboardKPIs derives the headline numbers from live state, so mutations
// through the other endpoints move them like the real backend's would.
func (s *Server) dashboardKPIs(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	today := collection.Filter(s.db.orders, func(o models.OrderDetails) bool {
		return sameDay(o.OrderDate.Time, now) && o.Status != models.OrderCanceled
	})
	kpis := models.KPIs{
		RevenueToday: collection.Sum(today, func(o models.OrderDetails) float64 { return o.Total }),
		OrdersToday:  len(today),
		PendingOrders: collection.Count(s.db.orders, func(o models.OrderDetails) bool {
			return o.Status == models.OrderPending
		}),
		LowStockItems: collection.Count(s.db.products, func(p models.Product) bool {
			return p.Status() != models.StockGood
		}),
	}
	writeJSON(w, http.StatusOK, kpis)
}

func (s *Server) dashboardAlerts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts := []models.LowStockAlert{}
	for _, p := range s.db.products {
		if p.Status() == models.StockGood {
			continue
		}
		alerts = append(alerts, models.LowStockAlert{
			ID:           p.ID.Int64(),
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			ReorderPoint: p.ReorderPoint,
		})
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) dashboardTasks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := []models.PriorityTask{}
	for _, p := range s.db.products {
		if p.Status() == models.StockOut {
			tasks = append(tasks, models.PriorityTask{
				Type:        "restock",
				Description: fmt.Sprintf("%s is out of stock", p.Name),
				LinkTo:      "/inventory",
			})
		}
	}
	pending := collection.Count(s.db.orders, func(o models.OrderDetails) bool {
		return o.Status == models.OrderPending
	})
	if pending > 0 {
		tasks = append(tasks, models.PriorityTask{
			Type:        "orders",
			Description: fmt.Sprintf("%d orders awaiting fulfilment", pending),
			LinkTo:      "/orders",
		})
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) createReorder(w http.ResponseWriter, r *http.Request) {
	var in models.ReorderRequest
	if !decodeBody(w, r, &in) {
		return
	}
	if in.Quantity <= 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "quantity must be positive")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := collection.First(s.db.products, func(p models.Product) bool {
		return p.ID.Int64() == in.ProductID
	})
	if !ok {
		writeDetail(w, http.StatusNotFound, "product not found")
		return
	}

	supplierID := int64(0)
	if sup, ok := collection.First(s.db.suppliers, func(sup models.Supplier) bool {
		return sup.Name == p.Supplier
	}); ok {
		supplierID = sup.ID.Int64()
	}

	poID := s.db.nextPurchaseOrderID
	s.db.nextPurchaseOrderID++
	writeJSON(w, http.StatusOK, models.ReorderResponse{
		Status:          "success",
		PurchaseOrderID: poID,
		SupplierID:      supplierID,
	})
}

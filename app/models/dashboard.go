package models

// KPIs are the dashboard's headline numbers.
type KPIs struct {
	RevenueToday  float64 `json:"revenue_today"`
	OrdersToday   int     `json:"orders_today"`
	PendingOrders int     `json:"pending_orders"`
	LowStockItems int     `json:"low_stock_items"`
}

// LowStockAlert is one entry of the critical-stock card.
type LowStockAlert struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"currentStock"`
	ReorderPoint int    `json:"reorderPoint"`
}

// ReorderQuantity computes how much to order for a low-stock item: the
// deficit against the reorder point when positive, otherwise a full
// reorder-point's worth (covers the race where stock recovered between
// render and confirm).
func (a LowStockAlert) ReorderQuantity() int {
	if deficit := a.ReorderPoint - a.CurrentStock; deficit > 0 {
		return deficit
	}
	return a.ReorderPoint
}

// PriorityTask is one entry of the priority-tasks card.
type PriorityTask struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	LinkTo      string `json:"link_to"`
}

// ReorderRequest is the body of POST /reorders/reorder.
type ReorderRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// ReorderResponse references the purchase order the backend created.
type ReorderResponse struct {
	Status          string `json:"status"`
	PurchaseOrderID int64  `json:"purchase_order_id"`
	SupplierID      int64  `json:"supplier_id"`
}

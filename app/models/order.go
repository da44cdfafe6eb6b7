package models

import (
	"fmt"
	"strconv"
)

// OrderStatus is one of the four order states. Any status may be set from
// any other — the workflow is a permissive relabeling, not a guarded state
// machine. New orders start as Pending server-side.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCanceled  OrderStatus = "Canceled"
)

// OrderStatuses lists every valid status, in workflow order.
var OrderStatuses = []OrderStatus{OrderPending, OrderShipped, OrderDelivered, OrderCanceled}

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if string(known) == s {
			return true
		}
	}
	return false
}

// Order is one row of the order list. Only Status is client-editable;
// Total and the customer fields are immutable once fetched.
type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name"`
	OrderDate    Time        `json:"order_date"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
}

// Key returns the order's identifier as the opaque string the store and
// selection tracker work with.
func (o Order) Key() string { return strconv.FormatInt(o.ID, 10) }

// Reference is the human-facing order number shown in the detail view.
func (o Order) Reference() string { return fmt.Sprintf("#ORD-%d", o.ID) }

// OrderItem is one line item as the wire carries it: the unit price is the
// price at time of sale, not the product's current price.
type OrderItem struct {
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"price_at_sale"`
	Product     struct {
		Name string `json:"name"`
	} `json:"product"`
}

// OrderDetails is the full order, fetched only when a detail view opens.
type OrderDetails struct {
	Order
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Items           []OrderItem `json:"items"`
}

// DisplayProduct is the detail view's line-item shape.
type DisplayProduct struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// DisplayProducts translates the wire items into the detail view's rows.
func (d OrderDetails) DisplayProducts() []DisplayProduct {
	out := make([]DisplayProduct, len(d.Items))
	for i, item := range d.Items {
		out[i] = DisplayProduct{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.PriceAtSale,
		}
	}
	return out
}

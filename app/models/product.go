package models

// Product is one catalog entry. SKU uniqueness is enforced server-side only.
type Product struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Category     string `json:"category"`
	Supplier     string `json:"supplier"`
	CurrentStock int    `json:"currentStock"`
	ReorderPoint int    `json:"reorderPoint"`
}

// ProductInput carries the editable fields for create and update calls;
// the server assigns the identifier.
type ProductInput struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Category     string `json:"category"`
	Supplier     string `json:"supplier"`
	CurrentStock int    `json:"currentStock"`
	ReorderPoint int    `json:"reorderPoint"`
}

// Categories is the fixed product/supplier classification set. The first
// entry doubles as the form default.
var Categories = []string{"Apparel", "Footwear", "Accessories"}

// DefaultCategory pre-fills new-record forms.
const DefaultCategory = "Apparel"

// StockStatus classifies a product's stock level. It is derived on every
// read from the live field values and never stored.
type StockStatus string

const (
	StockOut  StockStatus = "out"
	StockLow  StockStatus = "low"
	StockGood StockStatus = "good"
)

// StockStatusOf derives the status from a stock level and reorder point:
// out when empty, low when at or under the reorder point, good otherwise.
func StockStatusOf(currentStock, reorderPoint int) StockStatus {
	if currentStock == 0 {
		return StockOut
	}
	if currentStock <= reorderPoint {
		return StockLow
	}
	return StockGood
}

// Status derives the product's current stock status.
func (p Product) Status() StockStatus {
	return StockStatusOf(p.CurrentStock, p.ReorderPoint)
}

// Stock filter values offered by the inventory view, mapped onto the
// derived status rather than any stored field.
const (
	FilterInStock    = "in-stock"
	FilterLowStock   = "low-stock"
	FilterOutOfStock = "out-of-stock"
)

// MatchesStockFilter reports whether the product's derived status matches a
// non-sentinel stock filter value. "low-stock" means strictly low — an
// out-of-stock product is not low.
func (p Product) MatchesStockFilter(value string) bool {
	switch value {
	case FilterInStock:
		return p.Status() == StockGood
	case FilterLowStock:
		return p.Status() == StockLow
	case FilterOutOfStock:
		return p.Status() == StockOut
	default:
		return false
	}
}

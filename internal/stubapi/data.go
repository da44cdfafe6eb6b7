package stubapi

import (
	"strconv"
	"time"

	"stockpilot/app/models"
)

type database struct {
	products  []models.Product
	suppliers []models.Supplier
	orders    []models.OrderDetails

	nextProductID       int64
	nextSupplierID      int64
	nextPurchaseOrderID int64
}

func (db *database) newProductID() models.ID {
	id := db.nextProductID
	db.nextProductID++
	return models.ID(strconv.FormatInt(id, 10))
}

func (db *database) newSupplierID() models.ID {
	id := db.nextSupplierID
	db.nextSupplierID++
	return models.ID(strconv.FormatInt(id, 10))
}

func item(name string, qty int, price float64) models.OrderItem {
	var it models.OrderItem
	it.Quantity = qty
	it.PriceAtSale = price
	it.Product.Name = name
	return it
}

func order(id int64, customer string, daysAgo int, total float64, status models.OrderStatus, items ...models.OrderItem) models.OrderDetails {
	return models.OrderDetails{
		Order: models.Order{
			ID:           id,
			CustomerName: customer,
			OrderDate:    models.Time{Time: time.Now().AddDate(0, 0, -daysAgo).Truncate(time.Minute)},
			Total:        total,
			Status:       status,
		},
		CustomerEmail:   "customer" + strconv.FormatInt(id, 10) + "@example.com",
		CustomerPhone:   "+1 (555) 010-" + strconv.FormatInt(1000+id, 10)[1:],
		CustomerAddress: strconv.FormatInt(id, 10) + " Market Street",
		Items:           items,
	}
}

// seed builds the demo dataset: enough products to paginate, a few suppliers
// per category, and a spread of order dates so today's KPIs are non-zero.
func seed() *database {
	products := []models.Product{
		{ID: "1", Name: "Premium T-Shirt", SKU: "TS-001", Category: "Apparel", Supplier: "Global Textiles", CurrentStock: 3, ReorderPoint: 10},
		{ID: "2", Name: "Classic Hoodie", SKU: "HD-002", Category: "Apparel", Supplier: "Global Textiles", CurrentStock: 48, ReorderPoint: 15},
		{ID: "3", Name: "Denim Jacket", SKU: "JK-003", Category: "Apparel", Supplier: "Urban Stitch", CurrentStock: 0, ReorderPoint: 8},
		{ID: "4", Name: "Linen Shirt", SKU: "SH-004", Category: "Apparel", Supplier: "Urban Stitch", CurrentStock: 22, ReorderPoint: 10},
		{ID: "5", Name: "Running Shoes", SKU: "RS-005", Category: "Footwear", Supplier: "FastFeet", CurrentStock: 40, ReorderPoint: 15},
		{ID: "6", Name: "Leather Boots", SKU: "LB-006", Category: "Footwear", Supplier: "FastFeet", CurrentStock: 7, ReorderPoint: 12},
		{ID: "7", Name: "Canvas Sneakers", SKU: "CS-007", Category: "Footwear", Supplier: "StrideWorks", CurrentStock: 0, ReorderPoint: 10},
		{ID: "8", Name: "Trail Sandals", SKU: "TS-008", Category: "Footwear", Supplier: "StrideWorks", CurrentStock: 31, ReorderPoint: 10},
		{ID: "9", Name: "Leather Wallet", SKU: "WL-009", Category: "Accessories", Supplier: "CraftWorks", CurrentStock: 5, ReorderPoint: 5},
		{ID: "10", Name: "Canvas Belt", SKU: "BL-010", Category: "Accessories", Supplier: "CraftWorks", CurrentStock: 60, ReorderPoint: 20},
		{ID: "11", Name: "Wool Scarf", SKU: "SC-011", Category: "Accessories", Supplier: "Global Textiles", CurrentStock: 2, ReorderPoint: 10},
		{ID: "12", Name: "Baseball Cap", SKU: "CP-012", Category: "Accessories", Supplier: "Urban Stitch", CurrentStock: 80, ReorderPoint: 25},
	}

	suppliers := []models.Supplier{
		{ID: "1", Name: "Global Textiles", ContactPerson: "Priya Sharma", Email: "priya@globaltextiles.example", ContactNumber: "+1 (555) 201-0001", Category: "Apparel"},
		{ID: "2", Name: "Urban Stitch", ContactPerson: "Marco Ruiz", Email: "marco@urbanstitch.example", ContactNumber: "+1 (555) 201-0002", Category: "Apparel"},
		{ID: "3", Name: "FastFeet", ContactPerson: "Lena Okafor", Email: "lena@fastfeet.example", ContactNumber: "+1 (555) 201-0003", Category: "Footwear"},
		{ID: "4", Name: "CraftWorks", ContactPerson: "Tom Becker", Email: "tom@craftworks.example", ContactNumber: "+1 (555) 201-0004", Category: "Accessories"},
	}

	orders := []models.OrderDetails{
		order(1, "Jane Cooper", 0, 59.97, models.OrderPending, item("Premium T-Shirt", 3, 19.99)),
		order(2, "Devon Lane", 0, 129.99, models.OrderPending, item("Leather Boots", 1, 129.99)),
		order(3, "Esther Howard", 1, 89.98, models.OrderShipped, item("Running Shoes", 1, 64.99), item("Wool Scarf", 1, 24.99)),
		order(4, "Cameron Wilson", 2, 45.00, models.OrderShipped, item("Canvas Belt", 3, 15.00)),
		order(5, "Brooklyn Simmons", 3, 199.96, models.OrderDelivered, item("Classic Hoodie", 4, 49.99)),
		order(6, "Leslie Alexander", 4, 34.99, models.OrderDelivered, item("Baseball Cap", 1, 34.99)),
		order(7, "Guy Hawkins", 5, 74.98, models.OrderCanceled, item("Linen Shirt", 2, 37.49)),
		order(8, "Kristin Watson", 6, 149.97, models.OrderDelivered, item("Trail Sandals", 3, 49.99)),
		order(9, "Jacob Jones", 7, 24.99, models.OrderPending, item("Leather Wallet", 1, 24.99)),
		order(10, "Annette Black", 8, 99.98, models.OrderDelivered, item("Denim Jacket", 2, 49.99)),
	}

	return &database{
		products:            products,
		suppliers:           suppliers,
		orders:              orders,
		nextProductID:       int64(len(products)) + 1,
		nextSupplierID:      int64(len(suppliers)) + 1,
		nextPurchaseOrderID: 301,
	}
}

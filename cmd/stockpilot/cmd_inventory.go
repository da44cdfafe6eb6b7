package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stockpilot/app/forms"
	"stockpilot/app/models"
	"stockpilot/app/services"
	"stockpilot/config"
	"stockpilot/pkg/storage"
)

var inventoryFlags struct {
	search   string
	category string
	stock    string
	sort     string
	desc     bool
	page     int
}

var productFlags struct {
	name     string
	sku      string
	category string
	supplier string
	stock    string
	reorder  string
}

func init() {
	f := inventoryCmd.Flags()
	f.StringVar(&inventoryFlags.search, "search", "", "match name or SKU (case-insensitive substring)")
	f.StringVar(&inventoryFlags.category, "category", "all", "filter by category")
	f.StringVar(&inventoryFlags.stock, "stock", "all", "filter by stock status: in-stock | low-stock | out-of-stock")
	f.StringVar(&inventoryFlags.sort, "sort", "name", "sort field: name | sku | category | supplier | currentStock | reorderPoint")
	f.BoolVar(&inventoryFlags.desc, "desc", false, "sort descending")
	f.IntVar(&inventoryFlags.page, "page", 1, "page number")

	for _, cmd := range []*cobra.Command{inventoryAddCmd, inventoryEditCmd} {
		pf := cmd.Flags()
		pf.StringVar(&productFlags.name, "name", "", "product name")
		pf.StringVar(&productFlags.sku, "sku", "", "stock keeping unit")
		pf.StringVar(&productFlags.category, "category", "", "category: Apparel | Footwear | Accessories")
		pf.StringVar(&productFlags.supplier, "supplier", "", "supplier name")
		pf.StringVar(&productFlags.stock, "stock", "", "current stock")
		pf.StringVar(&productFlags.reorder, "reorder", "", "reorder point")
	}
}

func loadInventory(ctx context.Context) (*services.InventoryService, error) {
	client, err := boot()
	if err != nil {
		return nil, err
	}
	svc := services.NewInventoryService(client)
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// productForm stages the provided flags over base, leaving untouched fields
// as they are — so edit only changes what the user passed.
func productForm(cmd *cobra.Command, base *forms.ProductForm) *forms.ProductForm {
	set := func(flag string, dest *string, value string) {
		if cmd.Flags().Changed(flag) {
			*dest = value
		}
	}
	set("name", &base.Name, productFlags.name)
	set("sku", &base.SKU, productFlags.sku)
	set("category", &base.Category, productFlags.category)
	set("supplier", &base.Supplier, productFlags.supplier)
	set("stock", &base.CurrentStock, productFlags.stock)
	set("reorder", &base.ReorderPoint, productFlags.reorder)
	return base
}

// stockpilot inventory
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List products with search, filters, sorting and paging",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadInventory(cmd.Context())
		if err != nil {
			return err
		}

		view := svc.View()
		view.SetSearch(inventoryFlags.search)
		view.SetFilter("category", inventoryFlags.category)
		view.SetFilter("stock", inventoryFlags.stock)
		view.SetSort(inventoryFlags.sort, inventoryFlags.desc)
		view.SetPage(inventoryFlags.page)

		page := view.Page()
		w := table()
		fmt.Fprintln(w, "ID\tNAME\tSKU\tCATEGORY\tSUPPLIER\tSTOCK\tREORDER AT\tSTATUS")
		for _, p := range page.Records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
				p.ID, p.Name, p.SKU, p.Category, p.Supplier, p.CurrentStock, p.ReorderPoint, p.Status())
		}
		if err := w.Flush(); err != nil {
			return err
		}
		pager(page)
		return nil
	},
}

// stockpilot inventory:add
var inventoryAddCmd = &cobra.Command{
	Use:   "inventory:add",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadInventory(cmd.Context())
		if err != nil {
			return err
		}
		created, err := svc.Create(cmd.Context(), productForm(cmd, forms.NewProductForm()))
		if err != nil {
			return err
		}
		fmt.Printf("Created product %s (%s)\n", created.ID, created.Name)
		return nil
	},
}

// stockpilot inventory:edit <id>
var inventoryEditCmd = &cobra.Command{
	Use:   "inventory:edit <id>",
	Short: "Edit a product; only the flags you pass change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadInventory(cmd.Context())
		if err != nil {
			return err
		}
		id := models.ID(args[0])

		existing, ok := svc.Store().Get(string(id))
		if !ok {
			return fmt.Errorf("no product with id %s", id)
		}
		form := forms.NewProductForm()
		form.PopulateFrom(existing)

		updated, err := svc.Update(cmd.Context(), id, productForm(cmd, form))
		if err != nil {
			return err
		}
		fmt.Printf("Updated product %s (%s)\n", updated.ID, updated.Name)
		return nil
	},
}

// stockpilot inventory:rm <id>
var inventoryRmCmd = &cobra.Command{
	Use:   "inventory:rm <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadInventory(cmd.Context())
		if err != nil {
			return err
		}
		if err := svc.Delete(cmd.Context(), models.ID(args[0])); err != nil {
			return err
		}
		fmt.Printf("Deleted product %s\n", args[0])
		return nil
	},
}

// stockpilot inventory:export <id>...
var inventoryExportCmd = &cobra.Command{
	Use:   "inventory:export <id>...",
	Short: "Export the given products as CSV under the storage directory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadInventory(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range args {
			if _, ok := svc.Store().Get(id); !ok {
				return fmt.Errorf("no product with id %s", id)
			}
			svc.Selection().Select(id)
		}
		path, err := svc.ExportSelected(storage.NewLocal(config.ProfilePath()))
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d record(s) to %s\n", len(args), path)
		return nil
	},
}

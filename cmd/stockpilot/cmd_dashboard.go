package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stockpilot/app/models"
	"stockpilot/app/services"
)

// stockpilot dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's KPIs, low-stock alerts and priority tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := boot()
		if err != nil {
			return err
		}

		d, err := services.NewDashboardService(client).Load(cmd.Context())
		if err != nil {
			return err
		}

		if d.Failed("kpis") {
			fmt.Printf("KPIs unavailable: %v\n", d.Errors["kpis"])
		} else {
			fmt.Printf("Revenue today:   $%.2f\n", d.KPIs.RevenueToday)
			fmt.Printf("Orders today:    %d\n", d.KPIs.OrdersToday)
			fmt.Printf("Pending orders:  %d\n", d.KPIs.PendingOrders)
			fmt.Printf("Low stock items: %d\n", d.KPIs.LowStockItems)
		}

		fmt.Println("\nLow-stock alerts")
		switch {
		case d.Failed("alerts"):
			fmt.Printf("  unavailable: %v\n", d.Errors["alerts"])
		case len(d.Alerts) == 0:
			fmt.Println("  none — all stock levels are healthy")
		default:
			w := table()
			fmt.Fprintln(w, "  ID\tPRODUCT\tSTOCK\tREORDER AT\tSUGGESTED ORDER")
			for _, a := range d.Alerts {
				fmt.Fprintf(w, "  %d\t%s\t%d\t%d\t%d\n",
					a.ID, a.Name, a.CurrentStock, a.ReorderPoint, a.ReorderQuantity())
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		fmt.Println("\nPriority tasks")
		switch {
		case d.Failed("tasks"):
			fmt.Printf("  unavailable: %v\n", d.Errors["tasks"])
		case len(d.Tasks) == 0:
			fmt.Println("  nothing urgent")
		default:
			for _, task := range d.Tasks {
				fmt.Printf("  [%s] %s (%s)\n", task.Type, task.Description, task.LinkTo)
			}
		}
		return nil
	},
}

// stockpilot reorder <product-id>
var reorderCmd = &cobra.Command{
	Use:   "reorder <product-id>",
	Short: "Raise a purchase order for a low-stock product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("product id must be an integer, got %q", args[0])
		}
		client, err := boot()
		if err != nil {
			return err
		}
		svc := services.NewDashboardService(client)

		d, err := svc.Load(cmd.Context())
		if err != nil {
			return err
		}
		if d.Failed("alerts") {
			return fmt.Errorf("load low-stock alerts: %w", d.Errors["alerts"])
		}

		var alert models.LowStockAlert
		for _, a := range d.Alerts {
			if a.ID == productID {
				alert = a
				break
			}
		}
		if alert.ID == 0 {
			return fmt.Errorf("product %d has no low-stock alert to reorder against", productID)
		}

		resp, err := svc.Reorder(cmd.Context(), alert)
		if err != nil {
			return err
		}
		fmt.Printf("Ordered %d × %s — purchase order %d with supplier %d\n",
			alert.ReorderQuantity(), alert.Name, resp.PurchaseOrderID, resp.SupplierID)
		return nil
	},
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stockpilot/app/models"
	"stockpilot/app/services"
)

var orderFlags struct {
	search string
	status string
	sort   string
	desc   bool
	page   int
}

func init() {
	f := ordersCmd.Flags()
	f.StringVar(&orderFlags.search, "search", "", "match customer name or order id")
	f.StringVar(&orderFlags.status, "status", "all", "filter by status: Pending | Shipped | Delivered | Canceled")
	f.StringVar(&orderFlags.sort, "sort", "date", "sort field: id | customer | date | total | status")
	f.BoolVar(&orderFlags.desc, "desc", true, "sort descending")
	f.IntVar(&orderFlags.page, "page", 1, "page number")
}

func loadOrders(ctx context.Context) (*services.OrderService, error) {
	client, err := boot()
	if err != nil {
		return nil, err
	}
	svc := services.NewOrderService(client)
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// stockpilot orders
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders with search, status filter, sorting and paging",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadOrders(cmd.Context())
		if err != nil {
			return err
		}

		view := svc.View()
		view.SetSearch(orderFlags.search)
		view.SetFilter("status", orderFlags.status)
		view.SetSort(orderFlags.sort, orderFlags.desc)
		view.SetPage(orderFlags.page)

		page := view.Page()
		w := table()
		fmt.Fprintln(w, "REFERENCE\tCUSTOMER\tDATE\tTOTAL\tSTATUS")
		for _, o := range page.Records {
			fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%s\n",
				o.Reference(), o.CustomerName, o.OrderDate.Format("2006-01-02"), o.Total, o.Status)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		pager(page)
		return nil
	},
}

// stockpilot orders:show <id>
var ordersShowCmd = &cobra.Command{
	Use:   "orders:show <id>",
	Short: "Show one order's customer details and line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("order id must be an integer, got %q", args[0])
		}
		client, err := boot()
		if err != nil {
			return err
		}

		details, err := services.NewOrderService(client).Details(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s (%s)\n", details.Reference(), details.CustomerName, details.Status)
		fmt.Printf("Placed:  %s\n", details.OrderDate.Format("2006-01-02 15:04"))
		fmt.Printf("Email:   %s\n", details.CustomerEmail)
		fmt.Printf("Phone:   %s\n", details.CustomerPhone)
		fmt.Printf("Address: %s\n\n", details.CustomerAddress)

		w := table()
		fmt.Fprintln(w, "PRODUCT\tQTY\tUNIT PRICE\tLINE TOTAL")
		for _, row := range details.DisplayProducts() {
			fmt.Fprintf(w, "%s\t%d\t$%.2f\t$%.2f\n",
				row.Name, row.Quantity, row.UnitPrice, float64(row.Quantity)*row.UnitPrice)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\nOrder total: $%.2f\n", details.Total)
		return nil
	},
}

// stockpilot orders:status <id> <status>
var ordersStatusCmd = &cobra.Command{
	Use:   "orders:status <id> <status>",
	Short: "Set an order's status (Pending | Shipped | Delivered | Canceled)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("order id must be an integer, got %q", args[0])
		}
		svc, err := loadOrders(cmd.Context())
		if err != nil {
			return err
		}

		updated, err := svc.ChangeStatus(cmd.Context(), id, models.OrderStatus(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", updated.Reference(), updated.Status)
		return nil
	},
}

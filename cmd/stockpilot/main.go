package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stockpilot",
	Short: "StockPilot — inventory admin from the terminal",
	Long: "StockPilot is a terminal client for the inventory backend: browse and edit\n" +
		"products, orders and suppliers, watch the dashboard, and raise reorders.",
}

func init() {
	// Inventory
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(inventoryAddCmd)
	rootCmd.AddCommand(inventoryEditCmd)
	rootCmd.AddCommand(inventoryRmCmd)
	rootCmd.AddCommand(inventoryExportCmd)

	// Orders
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(ordersShowCmd)
	rootCmd.AddCommand(ordersStatusCmd)

	// Suppliers
	rootCmd.AddCommand(suppliersCmd)
	rootCmd.AddCommand(suppliersAddCmd)
	rootCmd.AddCommand(suppliersRmCmd)

	// Dashboard
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reorderCmd)

	// Profile
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(profileSetCmd)

	// Demo backend
	rootCmd.AddCommand(demoCmd)
}

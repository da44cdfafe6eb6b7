package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"stockpilot/config"
	"stockpilot/internal/api"
	"stockpilot/pkg/tableview"
)

// boot loads config and returns the API client every command talks through.
func boot() (*api.Client, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return api.New(), nil
}

// table returns a tabwriter ready for aligned terminal output.
func table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
}

// pager prints the page footer under a listing.
func pager[T any](result tableview.Result[T]) {
	fmt.Printf("\nPage %d of %d — %d records\n", result.Page, max(result.TotalPages, 1), result.TotalRecords)
}

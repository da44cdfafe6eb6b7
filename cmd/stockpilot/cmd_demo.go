package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"stockpilot/config"
	"stockpilot/internal/stubapi"
	"stockpilot/pkg/logger"
)

// stockpilot demo — run the built-in fake backend so the other commands have
// something to talk to. Point API_BASE_URL at it (the default already does).
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demo backend with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		addr := config.StubListenAddr()

		logger.Info("demo backend listening", "addr", addr)
		fmt.Printf("Demo backend on http://%s — API under /api/v1, metrics on /metrics\n", addr)
		return http.ListenAndServe(addr, stubapi.New().Handler())
	},
}

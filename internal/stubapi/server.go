// Package stubapi is a self-contained fake of the inventory backend, used by
// `stockpilot demo` and the integration tests. It speaks the same wire
// contract the real backend does: plain JSON bodies, and {"detail": "..."}
// on errors. State lives in memory and resets with the process.
package stubapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"stockpilot/pkg/metrics"
)

// Server holds the in-memory backend state behind an http.Handler.
type Server struct {
	mu sync.Mutex
	db *database

	router chi.Router
}

// New returns a server pre-loaded with the demo dataset.
func New() *Server {
	s := &Server{db: seed()}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", s.listProducts)
		r.Post("/products", s.createProduct)
		r.Patch("/products/{id}", s.updateProduct)
		r.Delete("/products/{id}", s.deleteProduct)

		r.Get("/orders", s.listOrders)
		r.Get("/orders/{id}", s.getOrder)
		r.Patch("/orders/{id}", s.updateOrderStatus)

		r.Get("/suppliers", s.listSuppliers)
		r.Post("/suppliers", s.createSupplier)
		r.Patch("/suppliers/{id}", s.updateSupplier)
		r.Delete("/suppliers/{id}", s.deleteSupplier)

		r.Get("/dashboard/kpis", s.dashboardKPIs)
		r.Get("/dashboard/low-stock-alerts", s.dashboardAlerts)
		r.Get("/dashboard/priority-tasks", s.dashboardTasks)

		r.Post("/reorders/reorder", s.createReorder)
	})

	r.Get("/metrics", metrics.Handler())

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail sends the backend's error shape: {"detail": "..."}.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}

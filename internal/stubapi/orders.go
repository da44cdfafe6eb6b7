package stubapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stockpilot/app/models"
	"stockpilot/pkg/collection"
)

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The list endpoint returns summaries; items stay behind the detail call.
	summaries := collection.Map(s.db.orders, func(o models.OrderDetails) models.Order { return o.Order })
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "order id must be an integer")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.db.orders {
		if o.ID == id {
			writeJSON(w, http.StatusOK, o)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "order not found")
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "order id must be an integer")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if !models.ValidOrderStatus(body.Status) {
		writeDetail(w, http.StatusUnprocessableEntity, "unknown order status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.db.orders {
		if s.db.orders[i].ID == id {
			s.db.orders[i].Status = models.OrderStatus(body.Status)
			writeJSON(w, http.StatusOK, s.db.orders[i].Order)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "order not found")
}

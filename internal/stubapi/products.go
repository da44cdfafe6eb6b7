package stubapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"stockpilot/app/models"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.db.products)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.db.products {
		if strings.EqualFold(p.SKU, in.SKU) {
			writeDetail(w, http.StatusBadRequest, "sku exists")
			return
		}
	}

	created := models.Product{
		ID:           s.db.newProductID(),
		Name:         in.Name,
		SKU:          in.SKU,
		Category:     in.Category,
		Supplier:     in.Supplier,
		CurrentStock: in.CurrentStock,
		ReorderPoint: in.ReorderPoint,
	}
	s.db.products = append(s.db.products, created)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.ProductInput
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.db.products {
		if string(p.ID) != id {
			continue
		}
		// SKU must stay unique across the other products.
		for _, other := range s.db.products {
			if other.ID != p.ID && strings.EqualFold(other.SKU, in.SKU) {
				writeDetail(w, http.StatusBadRequest, "sku exists")
				return
			}
		}
		updated := models.Product{
			ID:           p.ID,
			Name:         in.Name,
			SKU:          in.SKU,
			Category:     in.Category,
			Supplier:     in.Supplier,
			CurrentStock: in.CurrentStock,
			ReorderPoint: in.ReorderPoint,
		}
		s.db.products[i] = updated
		writeJSON(w, http.StatusOK, updated)
		return
	}

	writeDetail(w, http.StatusNotFound, "product not found")
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.db.products {
		if string(p.ID) == id {
			s.db.products = append(s.db.products[:i], s.db.products[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	writeDetail(w, http.StatusNotFound, "product not found")
}

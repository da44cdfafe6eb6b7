package stubapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stockpilot/app/models"
)

func (s *Server) listSuppliers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.db.suppliers)
}

func (s *Server) createSupplier(w http.ResponseWriter, r *http.Request) {
	var in models.SupplierInput
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := models.Supplier{
		ID:            s.db.newSupplierID(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Category:      in.Category,
	}
	s.db.suppliers = append(s.db.suppliers, created)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.SupplierInput
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sup := range s.db.suppliers {
		if string(sup.ID) != id {
			continue
		}
		updated := models.Supplier{
			ID:            sup.ID,
			Name:          in.Name,
			ContactPerson: in.ContactPerson,
			Email:         in.Email,
			ContactNumber: in.ContactNumber,
			Category:      in.Category,
		}
		s.db.suppliers[i] = updated
		writeJSON(w, http.StatusOK, updated)
		return
	}

	writeDetail(w, http.StatusNotFound, "supplier not found")
}

func (s *Server) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sup := range s.db.suppliers {
		if string(sup.ID) == id {
			s.db.suppliers = append(s.db.suppliers[:i], s.db.suppliers[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	writeDetail(w, http.StatusNotFound, "supplier not found")
}

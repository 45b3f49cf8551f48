// Package catalogd serves a seeded product catalog with the same routes and
// response shapes as the remote API, so the client can be exercised without
// network access.
package catalogd

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

type Server struct {
	items []models.CatalogItem
}

func NewServer(items []models.CatalogItem) *Server {
	return &Server{items: items}
}

// Router exposes the catalog API surface:
//
//	GET /products        -> [CatalogItem]
//	GET /products/{id}   -> CatalogItem
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/products", s.listProducts).Methods("GET")
	r.HandleFunc("/products/{id}", s.getProduct).Methods("GET")
	return r
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.items)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	for _, item := range s.items {
		if item.ID == id {
			writeJSON(w, item)
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

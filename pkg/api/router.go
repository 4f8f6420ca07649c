package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetRouter initialises a new http router and applies all routes
func GetRouter(s *Server) http.Handler {
	r := chi.NewRouter()
	return applyRoutes(r, s)
}

func applyRoutes(r chi.Router, s *Server) chi.Router {
	r.Route("/api", func(r chi.Router) {
		r.Get("/counterparties", s.getCounterparties)
		r.Post("/counterparties", s.postCounterparty)
		r.Put("/counterparties/{address}", s.putCounterparty)
		r.Get("/counterparties/detail", s.getDetail)
		r.Get("/schema", s.getSchema)
		r.Post("/admin/unlock", s.postUnlock)
		r.Get("/admin/status", s.getAdminStatus)
	})

	return r
}

package wire

import (
	"cinema-salles/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSalle(r chi.Router, salleHandler *adaptor.SalleHandler) {
	r.Route("/salles", func(r chi.Router) {
		r.Get("/", salleHandler.GetSalles)
		r.Post("/", salleHandler.CreateSalle)
		r.Get("/{id}", salleHandler.GetSalleByID)
		r.Patch("/{id}", salleHandler.UpdateSalle)
		r.Delete("/{id}", salleHandler.DeleteSalle)
	})
}

package repository

import (
	"cinema-salles/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Salle SalleRepository
	Movie MovieRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Salle: NewSalleRepository(db, log),
		Movie: NewMovieRepository(db, log),
	}
}

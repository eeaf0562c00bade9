package usecase

import (
	"cinema-salles/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Salle SalleService
	Movie MovieService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Salle: NewSalleService(repo.Salle, log),
		Movie: NewMovieService(repo.Movie, log),
	}
}

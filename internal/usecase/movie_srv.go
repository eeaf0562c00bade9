package usecase

import (
	"context"
	"fmt"

	"cinema-salles/internal/data/entity"
	"cinema-salles/internal/data/repository"
	"cinema-salles/internal/dto/request"
	"cinema-salles/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	ListMovies(ctx context.Context, req request.PageRequest) (*response.MovieListResponse, error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) (*response.MovieResponse, error)
}

type movieService struct {
	repo repository.MovieRepository
	log  *zap.Logger
}

func NewMovieService(repo repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, req request.PageRequest) (*response.MovieListResponse, error) {
	movies, err := s.repo.FindAll(ctx, entity.ListFilter{
		Limit:  req.Limit,
		Offset: req.Offset(),
		Max:    req.Max,
	})
	if err != nil {
		s.log.Error("Failed to get movies from repository",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
			zap.Intp("duration_max", req.Max),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.CountAll(ctx, req.Max)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	return response.NewMovieListResponse(movies, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.repo.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, &NotFoundError{Entity: "movie", ID: movieID}
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		Duration:    *req.Duration,
		Genre:       req.Genre,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// UpdateMovie changes the duration only. A nil duration returns the stored
// movie unchanged.
func (s *movieService) UpdateMovie(ctx context.Context, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	movie, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", req.ID, err)
	}
	if movie == nil {
		return nil, &NotFoundError{Entity: "movie", ID: req.ID}
	}

	if req.Duration != nil && *req.Duration != movie.Duration {
		movie.Duration = *req.Duration
		if err := s.repo.Update(ctx, movie); err != nil {
			return nil, fmt.Errorf("update movie %d: %w", req.ID, err)
		}
		s.log.Info("Movie updated",
			zap.Int64("movie_id", movie.ID),
			zap.Int("duration", movie.Duration),
		)
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Delete(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("delete movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, &NotFoundError{Entity: "movie", ID: movieID}
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", movieID))

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

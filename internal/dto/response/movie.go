package response

import "cinema-salles/internal/data/entity"

type MovieResponse struct {
	ID          int64  `json:"movie_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Genre       string `json:"genre"`
}

type MovieListResponse struct {
	Movies     []MovieResponse `json:"Movies"`
	TotalCount int64           `json:"totalCount"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genre:       movie.Genre,
	}
}

func NewMovieListResponse(movies []*entity.Movie, total int64) *MovieListResponse {
	items := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		items[i] = MovieToResponse(movie)
	}
	return &MovieListResponse{Movies: items, TotalCount: total}
}

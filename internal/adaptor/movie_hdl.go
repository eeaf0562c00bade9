package adaptor

import (
	"net/http"

	"cinema-salles/internal/dto/request"
	"cinema-salles/internal/usecase"
	"cinema-salles/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service      usecase.MovieService
	log          *zap.Logger
	defaultLimit int
}

func NewMovieHandler(service usecase.MovieService, config *utils.Config, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:      service,
		log:          log.With(zap.String("handler", "movie")),
		defaultLimit: config.App.PageLimit,
	}
}

// GetMovies handles GET /movies?page&limit&durationMax
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	var req request.MovieListRequest
	fieldErrors := parseListQuery(r.URL.Query(), &req.ListRequest, "durationMax", &req.DurationMax)
	fieldErrors = append(fieldErrors, utils.ValidateStruct(req)...)
	if len(fieldErrors) > 0 {
		utils.ResponseValidation(w, fieldErrors)
		return
	}

	movies, err := h.service.ListMovies(r.Context(), req.Normalize(h.defaultLimit))
	if err != nil {
		handleServiceError(h.log, w, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		handleServiceError(h.log, w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := decodeBody(r, &req, false); err != nil {
		respondBodyError(w, err)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidation(w, validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// UpdateMovie handles PATCH /movies/{id}. Only mounted when the movie update
// feature is enabled.
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req request.MovieUpdateRequest
	if err := decodeBody(r, &req, true); err != nil {
		respondBodyError(w, err)
		return
	}
	req.ID = movieID

	movie, err := h.service.UpdateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	movie, err := h.service.DeleteMovie(r.Context(), movieID)
	if err != nil {
		handleServiceError(h.log, w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

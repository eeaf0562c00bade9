package wire

import (
	"net/http"

	"cinema-salles/internal/adaptor"
	"cinema-salles/internal/data/repository"
	"cinema-salles/internal/usecase"
	"cinema-salles/pkg/middleware"
	"cinema-salles/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of repo and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(globalMiddleware(config, logger)...)
	if config.App.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{"message": "hello world"})
	})

	wireSalle(r, handler.Salle)
	wireMovie(r, handler.Movie, config)

	return r
}

// globalMiddleware lists the chain in order. Recover sits inside Logger and
// Metrics so a recovered panic is still logged and counted as a 500.
func globalMiddleware(config *utils.Config, logger *zap.Logger) []func(http.Handler) http.Handler {
	chain := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.Logger(logger),
	}
	if config.App.MetricsEnabled {
		chain = append(chain, middleware.Metrics())
	}
	return append(chain, middleware.Recover(logger), middleware.CORS())
}

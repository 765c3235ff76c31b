package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/games-api/internal/http/handlers"
	"github.com/preston-bernstein/games-api/internal/http/middleware"
	"github.com/preston-bernstein/games-api/internal/metrics"
)

// RouterConfig carries what the middleware chain needs besides the handlers.
type RouterConfig struct {
	AccessToken    string
	AllowedOrigins []string
	BodyLimit      int64
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
}

// NewRouter registers every route behind the fixed middleware order:
// request logger, panic recovery, CORS, body decoder, then per-route guards.
func NewRouter(h *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger(cfg.Logger, cfg.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.BodyDecoder(cfg.BodyLimit))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Index)
	r.Get("/about", h.About)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/greeting", h.Greeting)

		r.Get("/games", h.ListGames)
		r.Post("/games", h.CreateGame)
		r.Get("/games/{id}", h.GameByID)

		r.Get("/dummy-products", h.DummyProducts)
		r.Get("/products/{id}", h.ProductByID)
		r.With(middleware.RequireToken(cfg.AccessToken, cfg.Logger, cfg.Metrics)).
			Get("/products", h.Products)
	})

	return r
}

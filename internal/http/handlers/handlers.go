package handlers

import (
	"log/slog"
	"net/http"
	"time"

	appgames "github.com/preston-bernstein/games-api/internal/app/games"
	appproducts "github.com/preston-bernstein/games-api/internal/app/products"
	"github.com/preston-bernstein/games-api/internal/http/pages"
	"github.com/preston-bernstein/games-api/internal/http/respond"
	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/timeutil"
)

const greetingMessage = "Hello from the API!"

type nowFunc func() time.Time

// Handler wires HTTP routes to the games and products services.
type Handler struct {
	games    *appgames.Service
	products *appproducts.Service
	logger   *slog.Logger
	now      nowFunc
	ready    func() bool
}

// NewHandler constructs a Handler. ready may be nil, in which case the
// service always reports ready.
func NewHandler(games *appgames.Service, products *appproducts.Service, logger *slog.Logger, ready func() bool) *Handler {
	return &Handler{
		games:    games,
		products: products,
		logger:   logger,
		now:      time.Now,
		ready:    ready,
	}
}

type greetingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Index serves the home page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	respond.HTML(w, http.StatusOK, pages.Index(), h.loggerFor(r))
}

// About serves the about page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	respond.HTML(w, http.StatusOK, pages.About(), h.loggerFor(r))
}

// Greeting returns a fixed message and the current time.
func (h *Handler) Greeting(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, greetingResponse{
		Message:   greetingMessage,
		Timestamp: timeutil.FormatISO(h.now()),
	}, h.loggerFor(r))
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		respond.Error(w, http.StatusServiceUnavailable, "shutting down", h.loggerFor(r))
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.loggerFor(r))
}

// Ready reports readiness for traffic once the games store has loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready == nil || h.ready() {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.loggerFor(r))
		return
	}
	respond.Error(w, http.StatusServiceUnavailable, "not ready", h.loggerFor(r))
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusNotFound, "not found", h.loggerFor(r))
}

// MethodNotAllowed answers known paths requested with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusMethodNotAllowed, "method not allowed", h.loggerFor(r))
}

func (h *Handler) loggerFor(r *http.Request) *slog.Logger {
	if r == nil {
		return h.logger
	}
	return logging.FromContext(r.Context(), h.logger)
}

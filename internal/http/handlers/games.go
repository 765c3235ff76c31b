package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/games-api/internal/http/middleware"
	"github.com/preston-bernstein/games-api/internal/http/respond"
	"github.com/preston-bernstein/games-api/internal/logging"
)

const msgGameNotFound = "Game not found"

// ListGames returns the whole collection.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.games.Games(), h.loggerFor(r))
}

// CreateGame appends a game built from the decoded body and returns the
// collection after the insert. The response is written once the store has
// finished persisting.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerFor(r)
	created, all := h.games.Create(r.Context(), middleware.BodyFromContext(r.Context()))
	logging.Info(logger, "game created",
		"game_id", created.ID,
		"uuid", created.UUID,
		logging.FieldCount, len(all),
	)
	respond.JSON(w, http.StatusCreated, all, logger)
}

// GameByID returns a single game. Ids that do not parse are a miss.
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	game, ok := h.games.GameByRawID(chi.URLParam(r, "id"))
	if !ok {
		respond.Error(w, http.StatusNotFound, msgGameNotFound, h.loggerFor(r))
		return
	}
	respond.JSON(w, http.StatusOK, game, h.loggerFor(r))
}

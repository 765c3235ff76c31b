package handlers

import (
	"errors"
	"net/http"

	appproducts "github.com/preston-bernstein/games-api/internal/app/products"
	"github.com/preston-bernstein/games-api/internal/http/respond"
	"github.com/preston-bernstein/games-api/internal/logging"
)

// An empty catalog answers with the same message as a missing game.
const msgNoProducts = msgGameNotFound

// DummyProducts relays the remote catalog. Both an empty list and an
// upstream failure answer 404; failures carry the upstream message.
func (h *Handler) DummyProducts(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerFor(r)
	items, err := h.products.CatalogProducts(r.Context())
	switch {
	case errors.Is(err, appproducts.ErrNoProducts):
		respond.Error(w, http.StatusNotFound, msgNoProducts, logger)
		return
	case err != nil:
		logging.Warn(logger, "catalog relay failed", "error", err)
		respond.Error(w, http.StatusNotFound, err.Error(), logger)
		return
	}
	respond.JSON(w, http.StatusOK, items, logger)
}

// ProductByID returns one freshly generated product. The id is not used.
func (h *Handler) ProductByID(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.products.Mock(), h.loggerFor(r))
}

// Products returns a generated list.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.products.Mocks(), h.loggerFor(r))
}

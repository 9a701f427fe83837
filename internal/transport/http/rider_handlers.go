package http

import (
	"net/http"

	"ride-hail-sim/internal/domain/grid"
)

type createRiderRequest struct {
	ID string `json:"id,omitempty"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

func (h *Handler) handleCreateRider(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)

	var req createRiderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.httpError(ctx, w, http.StatusBadRequest, "invalid JSON: "+err.Error(), err)
		return
	}

	view, err := h.sim.CreateRider(req.ID, grid.Position{X: req.X, Y: req.Y})
	if err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.hub.Broadcast(ctx, h.sim.State())
	h.logger.Info(ctx, "rider_created", "rider created", map[string]any{"rider_id": view.ID})
	h.jsonResponse(ctx, w, http.StatusCreated, view)
}

func (h *Handler) handleGetRider(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	id := r.PathValue("id")

	view, err := h.sim.GetRider(id)
	if err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.logger.Info(ctx, "rider_fetched", "rider fetched", map[string]any{"rider_id": id})
	h.jsonResponse(ctx, w, http.StatusOK, view)
}

func (h *Handler) handleDeleteRider(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	id := r.PathValue("id")

	if err := h.sim.DeleteRider(id); err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.hub.Broadcast(ctx, h.sim.State())
	h.logger.Info(ctx, "rider_deleted", "rider deleted", map[string]any{"rider_id": id})
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"net/http"

	"ride-hail-sim/internal/domain/grid"
)

type createDriverRequest struct {
	ID string `json:"id,omitempty"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

func (h *Handler) handleCreateDriver(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)

	var req createDriverRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.httpError(ctx, w, http.StatusBadRequest, "invalid JSON: "+err.Error(), err)
		return
	}

	view, err := h.sim.CreateDriver(req.ID, grid.Position{X: req.X, Y: req.Y})
	if err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.hub.Broadcast(ctx, h.sim.State())
	h.logger.Info(ctx, "driver_created", "driver created", map[string]any{"driver_id": view.ID})
	h.jsonResponse(ctx, w, http.StatusCreated, view)
}

func (h *Handler) handleGetDriver(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	id := r.PathValue("id")

	view, err := h.sim.GetDriver(id)
	if err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.logger.Info(ctx, "driver_fetched", "driver fetched", map[string]any{"driver_id": id})
	h.jsonResponse(ctx, w, http.StatusOK, view)
}

func (h *Handler) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	id := r.PathValue("id")

	if err := h.sim.DeleteDriver(id); err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.hub.Broadcast(ctx, h.sim.State())
	h.logger.Info(ctx, "driver_deleted", "driver deleted", map[string]any{"driver_id": id})
	w.WriteHeader(http.StatusNoContent)
}

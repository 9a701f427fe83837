package http

import "net/http"

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	state := h.sim.State()
	h.logger.Info(ctx, "state_fetched", "state fetched", map[string]any{"tick": state.Tick})
	h.jsonResponse(ctx, w, http.StatusOK, state)
}

func (h *Handler) handleTick(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	state := h.sim.Tick()
	h.hub.Broadcast(ctx, state)
	h.logger.Info(ctx, "tick_advanced", "tick advanced", map[string]any{"tick": state.Tick})
	h.jsonResponse(ctx, w, http.StatusOK, state)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	h.sim.Reset()
	h.hub.Broadcast(ctx, h.sim.State())
	h.logger.Info(ctx, "state_reset", "state reset", nil)
	h.jsonResponse(ctx, w, http.StatusOK, map[string]string{"message": "State reset successfully"})
}

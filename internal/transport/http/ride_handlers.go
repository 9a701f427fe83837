package http

import (
	"net/http"

	"ride-hail-sim/internal/domain/grid"
)

type requestRideRequest struct {
	ID      string `json:"id,omitempty"`
	RiderID string `json:"rider_id"`
	Pickup  struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pickup"`
	Dropoff struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"dropoff"`
}

func (h *Handler) handleRequestRide(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)

	var req requestRideRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.httpError(ctx, w, http.StatusBadRequest, "invalid JSON: "+err.Error(), err)
		return
	}

	pickup := grid.Position{X: req.Pickup.X, Y: req.Pickup.Y}
	dropoff := grid.Position{X: req.Dropoff.X, Y: req.Dropoff.Y}

	view, err := h.sim.RequestRide(req.ID, req.RiderID, pickup, dropoff)
	if err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	ctx = h.logger.WithRideID(ctx, view.ID)
	h.hub.Broadcast(ctx, h.sim.State())
	h.logger.Info(ctx, "ride_requested", "ride requested", map[string]any{"status": view.Status, "driver_id": view.DriverID})
	h.jsonResponse(ctx, w, http.StatusCreated, view)
}

func (h *Handler) handleGetRide(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	id := r.PathValue("id")
	ctx = h.logger.WithRideID(ctx, id)

	view, err := h.sim.GetRide(id)
	if err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.logger.Info(ctx, "ride_fetched", "ride fetched", map[string]any{"status": view.Status})
	h.jsonResponse(ctx, w, http.StatusOK, view)
}

func (h *Handler) handleAcceptRide(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	id := r.PathValue("id")
	ctx = h.logger.WithRideID(ctx, id)

	view, err := h.sim.AcceptRide(id)
	if err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.hub.Broadcast(ctx, h.sim.State())
	h.logger.Info(ctx, "ride_accepted", "ride accepted", map[string]any{"driver_id": view.DriverID})
	h.jsonResponse(ctx, w, http.StatusOK, view)
}

func (h *Handler) handleRejectRide(w http.ResponseWriter, r *http.Request) {
	ctx := h.withReqID(r.Context(), r)
	id := r.PathValue("id")
	ctx = h.logger.WithRideID(ctx, id)

	view, err := h.sim.RejectRide(id)
	if err != nil {
		h.writeEngineError(ctx, w, err)
		return
	}
	h.hub.Broadcast(ctx, h.sim.State())
	h.logger.Info(ctx, "ride_rejected", "ride rejected", map[string]any{"status": view.Status, "driver_id": view.DriverID})
	h.jsonResponse(ctx, w, http.StatusOK, view)
}

// Package http adapts the simulation engine to HTTP: one route per
// operation, JSON request/response bodies, and the error-kind mapping
// described by the engine's contract (NotFound, Conflict, InvalidInput).
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ride-hail-sim/internal/domain/driver"
	"ride-hail-sim/internal/domain/grid"
	"ride-hail-sim/internal/domain/ride"
	"ride-hail-sim/internal/domain/rider"
	"ride-hail-sim/internal/engine"
	"ride-hail-sim/internal/general/logger"
	"ride-hail-sim/internal/ports"
	"ride-hail-sim/internal/ws"
)

// Handler adapts HTTP requests to the simulation engine.
type Handler struct {
	sim    ports.SimEngine
	logger *logger.Logger
	hub    *ws.Hub
}

// New wires an HTTP handler around a SimEngine.
func New(sim ports.SimEngine, logger *logger.Logger, hub *ws.Hub) *Handler {
	return &Handler{sim: sim, logger: logger, hub: hub}
}

// RegisterRoutes mounts every operation's endpoint on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /state", h.handleGetState)
	mux.HandleFunc("POST /tick", h.handleTick)
	mux.HandleFunc("POST /reset", h.handleReset)

	mux.HandleFunc("POST /drivers", h.handleCreateDriver)
	mux.HandleFunc("GET /drivers/{id}", h.handleGetDriver)
	mux.HandleFunc("DELETE /drivers/{id}", h.handleDeleteDriver)

	mux.HandleFunc("POST /riders", h.handleCreateRider)
	mux.HandleFunc("GET /riders/{id}", h.handleGetRider)
	mux.HandleFunc("DELETE /riders/{id}", h.handleDeleteRider)

	mux.HandleFunc("POST /rides", h.handleRequestRide)
	mux.HandleFunc("GET /rides/{id}", h.handleGetRide)
	mux.HandleFunc("POST /rides/{id}/accept", h.handleAcceptRide)
	mux.HandleFunc("POST /rides/{id}/reject", h.handleRejectRide)

	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /ws/visualizer", h.hub.Connect)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(h.withReqID(r.Context(), r), w, http.StatusOK, map[string]string{"status": "ok"})
}

// ----- shared helpers -----

func (h *Handler) jsonResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	var buf []byte
	var err error

	if data != nil {
		buf, err = json.Marshal(data)
		if err != nil {
			h.logger.Error(ctx, "response_encode_failed", "failed to encode response", err, nil)
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
			return
		}
	} else {
		buf = []byte("{}")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

func (h *Handler) httpError(ctx context.Context, w http.ResponseWriter, status int, msg string, err error) {
	action := "request_failed"
	switch status {
	case http.StatusNotFound:
		action = "entity_not_found"
	case http.StatusConflict:
		action = "conflict"
	case http.StatusBadRequest:
		action = "validation_failed"
	}
	if status >= 500 {
		action = "http_internal_error"
	}
	h.logger.Error(ctx, action, msg, err, nil)

	type errBody struct {
		Error string `json:"error"`
	}
	h.jsonResponse(ctx, w, status, errBody{Error: msg})
}

func (h *Handler) withReqID(ctx context.Context, r *http.Request) context.Context {
	reqID := r.Header.Get("X-Request-ID")
	if strings.TrimSpace(reqID) == "" {
		reqID = randID()
	}
	return h.logger.WithRequestID(ctx, reqID)
}

func randID() string {
	var b [12]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// decodeJSON strictly decodes r's body into dst, rejecting unknown fields
// and bodies over 1 MiB.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeEngineError classifies an engine error into the NotFound / Conflict
// / InvalidInput taxonomy and writes the matching HTTP status.
func (h *Handler) writeEngineError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrDriverNotFound),
		errors.Is(err, engine.ErrRiderNotFound),
		errors.Is(err, engine.ErrRideNotFound):
		h.httpError(ctx, w, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, engine.ErrDuplicateID),
		errors.Is(err, engine.ErrRideNotAwaitingAccept),
		errors.Is(err, engine.ErrDriverNotBound),
		errors.Is(err, driver.ErrAlreadyBusy):
		h.httpError(ctx, w, http.StatusConflict, err.Error(), err)
	case errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, driver.ErrIDRequired),
		errors.Is(err, rider.ErrIDRequired),
		errors.Is(err, ride.ErrIDRequired),
		errors.Is(err, ride.ErrRiderIDRequired):
		h.httpError(ctx, w, http.StatusBadRequest, err.Error(), err)
	default:
		h.httpError(ctx, w, http.StatusBadRequest, err.Error(), err)
	}
}

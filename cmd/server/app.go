package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"ride-hail-sim/internal/engine"
	"ride-hail-sim/internal/general/config"
	"ride-hail-sim/internal/general/logger"
	transporthttp "ride-hail-sim/internal/transport/http"
	"ride-hail-sim/internal/ws"
)

// run wires the simulation server and blocks until ctx is cancelled.
func run(ctx context.Context, configPath string) error {
	log := logger.New("ride-hail-sim")
	ctx = log.WithRequestID(ctx, "startup-001")

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		log.Error(ctx, "config_load_failed", "failed to load configuration", err, nil)
		return err
	}

	sim, err := engine.New(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		log.Error(ctx, "engine_init_failed", "failed to initialize simulation engine", err, nil)
		return err
	}

	hub := ws.NewHub(log)

	mux := http.NewServeMux()
	httpHandler := transporthttp.New(sim, log, hub)
	httpHandler.RegisterRoutes(mux)

	handler := withCORS(withConcurrencyLimit(cfg.Server.MaxConcurrent, mux))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	log.Info(ctx, "service_started",
		fmt.Sprintf("ride-hail-sim started on port %d", cfg.Server.Port),
		map[string]any{"port": cfg.Server.Port, "max_concurrent": cfg.Server.MaxConcurrent, "grid": fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height)},
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info(ctx, "shutdown_started", "starting graceful shutdown", nil)
		if err := srv.Shutdown(shCtx); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "http_shutdown_failed", "failed to gracefully shut down HTTP server", err, nil)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "http_server_error", "HTTP server terminated with error", err, map[string]any{"port": cfg.Server.Port})
			return err
		}
		return nil
	}

	return nil
}

// withCORS allows any origin to call the API, matching the visualizer's
// need to be served from a different origin than the simulation server.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withConcurrencyLimit wraps an http.Handler with a semaphore-based limiter,
// bounding how many requests can be in flight at once.
func withConcurrencyLimit(n int, next http.Handler) http.Handler {
	if n <= 0 {
		return next
	}
	sem := make(chan struct{}, n)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	})
}

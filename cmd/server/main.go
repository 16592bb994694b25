package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/seatmap/seatmap-editor/backend-go/internal/asset"
	"github.com/seatmap/seatmap-editor/backend-go/internal/auth"
	"github.com/seatmap/seatmap-editor/backend-go/internal/cache"
	"github.com/seatmap/seatmap-editor/backend-go/internal/config"
	"github.com/seatmap/seatmap-editor/backend-go/internal/embed"
	"github.com/seatmap/seatmap-editor/backend-go/internal/export"
	"github.com/seatmap/seatmap-editor/backend-go/internal/maps"
	mw "github.com/seatmap/seatmap-editor/backend-go/internal/middleware"
	"github.com/seatmap/seatmap-editor/backend-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		slog.Error("migrate database", "error", err)
		os.Exit(1)
	}

	published, err := cache.Connect(ctx, cfg.RedisAddr, cfg.CacheTTL)
	if err != nil {
		slog.Error("connect to redis", "error", err)
		os.Exit(1)
	}
	defer published.Close()
	if published == nil {
		slog.Info("published map cache disabled")
	}

	authService := auth.NewService(st, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	hub := embed.NewHub()
	go hub.Run()

	mapService := maps.NewService(st, published, cfg.HistoryLimit)
	mapHandler := maps.NewHandler(mapService, hub)
	embedHandler := embed.NewHandler(hub, mapService.LoadPublished, cfg.EmbedOriginList())

	assetHandler := asset.NewHandler(cfg.AssetDir)
	exportHandler := export.NewHandler(mapService)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Auth routes (public)
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Uploaded backgrounds are served publicly so embeds can load them
	r.PathPrefix("/assets/").Handler(assetHandler.Serve()).Methods("GET")

	// Stateless export normalization (public, used by the offline editor)
	r.HandleFunc("/export/seatmap", exportHandler.Convert).Methods("POST", "OPTIONS")

	// Published maps and live embeds (public)
	r.HandleFunc("/maps/{mapId}/published", mapHandler.Published).Methods("GET")
	r.HandleFunc("/ws/embed/{mapId}", embedHandler.ServeWS)

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authService.AuthMiddleware)

	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	api.HandleFunc("/maps", mapHandler.List).Methods("GET")
	api.HandleFunc("/maps", mapHandler.Create).Methods("POST")
	api.HandleFunc("/maps/import", mapHandler.Import).Methods("POST")
	api.HandleFunc("/maps/background", assetHandler.Upload).Methods("POST")
	api.HandleFunc("/maps/{mapId}", mapHandler.Get).Methods("GET")
	api.HandleFunc("/maps/{mapId}", mapHandler.Update).Methods("PUT")
	api.HandleFunc("/maps/{mapId}", mapHandler.Delete).Methods("DELETE")
	api.HandleFunc("/maps/{mapId}/publish", mapHandler.Publish).Methods("POST")
	api.HandleFunc("/maps/{mapId}/grid", mapHandler.GenerateGrid).Methods("POST")
	api.HandleFunc("/maps/{mapId}/status", mapHandler.SetStatus).Methods("POST")
	api.HandleFunc("/maps/{mapId}/export", exportHandler.Download).Methods("GET")

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Close embed sockets before draining HTTP
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "cache", published != nil)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

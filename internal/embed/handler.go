package embed

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/seatmap/seatmap-editor/backend-go/internal/store"
)

type Handler struct {
	hub     *Hub
	load    MapLoader
	origins []string
}

// NewHandler serves embed sockets. origins are accepted Origin host
// patterns; a scheme prefix is stripped.
func NewHandler(hub *Hub, load MapLoader, origins []string) *Handler {
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		o = strings.TrimPrefix(o, "https://")
		o = strings.TrimPrefix(o, "http://")
		if o != "" {
			patterns = append(patterns, o)
		}
	}
	return &Handler{hub: hub, load: load, origins: patterns}
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	mapID := mux.Vars(r)["mapId"]

	doc, err := h.load(r.Context(), mapID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "seat map not found", http.StatusNotFound)
			return
		}
		slog.Error("load seat map for embed", "error", err, "map", mapID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := NewClient(h.hub, conn, mapID, clientID, doc)

	h.hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

package embed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
)

// MapLoader fetches the published map a room is built from.
type MapLoader func(ctx context.Context, mapID string) (*document.SeatMap, error)

// Room holds the live copy of one published map. Status changes pushed by
// the host land here so viewers joining later start from current state.
type Room struct {
	mu      sync.RWMutex
	mapID   string
	doc     *document.SeatMap
	clients map[string]*Client // clientID -> client
}

func NewRoom(mapID string, doc *document.SeatMap) *Room {
	return &Room{
		mapID:   mapID,
		doc:     document.MustClone(doc),
		clients: make(map[string]*Client),
	}
}

// Document returns a copy of the room's current map.
func (r *Room) Document() *document.SeatMap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return document.MustClone(r.doc)
}

func (r *Room) applyStatuses(updates []StatusUpdate) {
	batch := make([]document.SeatUpdate, len(updates))
	for i, u := range updates {
		batch[i] = document.SeatUpdate{ID: u.SeatID, Patch: document.SeatPatch{Status: document.Ptr(u.Status)}}
	}
	r.mu.Lock()
	r.doc = document.BatchUpdateSeats(r.doc, batch)
	r.mu.Unlock()
}

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // mapID -> room
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.stop:
			h.closeAll()
			return
		}
	}
}

// Stop disconnects every client and waits for Run to return.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.stop:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stop:
	}
}

// Room returns the live room for a map, if any viewer is connected.
func (h *Hub) Room(mapID string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[mapID]
	return room, ok
}

// ClientCount returns how many viewers are connected to a map.
func (h *Hub) ClientCount(mapID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if room, ok := h.rooms[mapID]; ok {
		return len(room.clients)
	}
	return 0
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.MapID]
	if !ok {
		room = NewRoom(client.MapID, client.initial)
		h.rooms[client.MapID] = room
	}
	client.viewer = NewViewer(room.Document())
	client.initial = nil
	room.clients[client.ClientID] = client
	h.mu.Unlock()

	close(client.ready)
	client.Send(client.viewer.Ready())

	slog.Info("viewer joined", "client", client.ClientID, "map", client.MapID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.MapID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, ok := room.clients[client.ClientID]; !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	client.closeSend()

	if len(room.clients) == 0 {
		delete(h.rooms, client.MapID)
	}
	h.mu.Unlock()

	slog.Info("viewer left", "client", client.ClientID, "map", client.MapID)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for mapID, room := range h.rooms {
		for _, c := range room.clients {
			c.closeSend()
		}
		delete(h.rooms, mapID)
	}
}

func (h *Hub) handleMessage(sender *Client, msg Message) {
	if msg.Type != CmdSetStatus {
		for _, ev := range sender.viewer.Handle(msg) {
			sender.Send(ev)
		}
		return
	}

	updates, err := ParseStatusUpdates(msg.Payload)
	if err != nil {
		slog.Warn("invalid status payload", "error", err, "client", sender.ClientID)
		sender.Send(errorMessage(CodeInvalidPayload, err.Error()))
		return
	}
	h.ApplyStatuses(sender.MapID, updates)
}

// ApplyStatuses records status changes for a map and fans them out to every
// connected viewer. It returns the number of viewers notified. The room
// document and the client set change under the same lock, so a viewer that
// joins concurrently either starts from the updated document or receives
// the change.
func (h *Hub) ApplyStatuses(mapID string, updates []StatusUpdate) int {
	if len(updates) == 0 {
		return 0
	}

	h.mu.Lock()
	room, ok := h.rooms[mapID]
	if !ok {
		h.mu.Unlock()
		return 0
	}
	room.applyStatuses(updates)
	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		for _, ev := range c.viewer.ApplyStatuses(updates) {
			c.Send(ev)
		}
	}

	slog.Debug("statuses applied", "map", mapID, "updates", len(updates), "viewers", len(clients))
	return len(clients)
}

package maps

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/seatmap/seatmap-editor/backend-go/internal/store"
)

// memRepo is an in-memory Repository.
type memRepo struct {
	mu        sync.Mutex
	maps      map[string]store.MapRecord
	published int // GetPublishedDocument calls
	clock     time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{maps: map[string]store.MapRecord{}, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memRepo) CreateMap(_ context.Context, m store.MapRecord) (*store.MapRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.maps[m.ID]; ok {
		return nil, store.ErrDuplicate
	}
	m.CreatedAt = r.tick()
	m.UpdatedAt = m.CreatedAt
	r.maps[m.ID] = m
	return &m, nil
}

func (r *memRepo) GetMap(_ context.Context, id string) (*store.MapRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.maps[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &m, nil
}

func (r *memRepo) ListMaps(_ context.Context, ownerID string) ([]store.MapRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []store.MapRecord{}
	for _, m := range r.maps {
		if m.OwnerID == ownerID {
			m.Document = nil
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *memRepo) UpdateMap(_ context.Context, m store.MapRecord) (*store.MapRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.maps[m.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cur.Name, cur.Document, cur.SeatCount = m.Name, m.Document, m.SeatCount
	cur.UpdatedAt = r.tick()
	r.maps[m.ID] = cur
	return &cur, nil
}

func (r *memRepo) SetPublished(_ context.Context, id string, published bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.maps[id]
	if !ok {
		return store.ErrNotFound
	}
	cur.Published = published
	r.maps[id] = cur
	return nil
}

func (r *memRepo) DeleteMap(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.maps[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.maps, id)
	return nil
}

func (r *memRepo) GetPublishedDocument(_ context.Context, id string) (json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published++
	m, ok := r.maps[id]
	if !ok || !m.Published {
		return nil, store.ErrNotFound
	}
	return m.Document, nil
}

package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/seatmap/seatmap-editor/backend-go/internal/cache"
	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/editor"
	"github.com/seatmap/seatmap-editor/backend-go/internal/store"
	"github.com/seatmap/seatmap-editor/backend-go/internal/typeid"
)

var (
	ErrNotFound  = store.ErrNotFound
	ErrForbidden = errors.New("forbidden")
)

// Repository is the slice of the store the service needs.
type Repository interface {
	CreateMap(ctx context.Context, m store.MapRecord) (*store.MapRecord, error)
	GetMap(ctx context.Context, id string) (*store.MapRecord, error)
	ListMaps(ctx context.Context, ownerID string) ([]store.MapRecord, error)
	UpdateMap(ctx context.Context, m store.MapRecord) (*store.MapRecord, error)
	SetPublished(ctx context.Context, id string, published bool) error
	DeleteMap(ctx context.Context, id string) error
	GetPublishedDocument(ctx context.Context, id string) (json.RawMessage, error)
}

type Service struct {
	repo         Repository
	cache        *cache.Published
	historyLimit int
}

// NewService builds the seat map service. cache may be nil.
func NewService(repo Repository, c *cache.Published, historyLimit int) *Service {
	return &Service{repo: repo, cache: c, historyLimit: historyLimit}
}

type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SeatCount int    `json:"seatCount"`
	Published bool   `json:"published"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Detail struct {
	Summary
	Document *document.SeatMap `json:"document"`
}

func (s *Service) Create(ctx context.Context, ownerID, name string) (*Detail, error) {
	return s.insert(ctx, ownerID, document.NewEmptySeatMap(name))
}

// Import validates an exported seat map and stores it under a fresh id.
func (s *Service) Import(ctx context.Context, ownerID string, data []byte) (*Detail, error) {
	doc, err := document.Import(data)
	if err != nil {
		return nil, err
	}
	doc.ID = typeid.NewSeatMapID()
	return s.insert(ctx, ownerID, doc)
}

func (s *Service) insert(ctx context.Context, ownerID string, doc *document.SeatMap) (*Detail, error) {
	data, err := document.Export(doc)
	if err != nil {
		return nil, fmt.Errorf("encode seat map: %w", err)
	}
	rec, err := s.repo.CreateMap(ctx, store.MapRecord{
		ID:        doc.ID,
		OwnerID:   ownerID,
		Name:      doc.Name,
		Document:  data,
		SeatCount: len(doc.Seats),
	})
	if err != nil {
		return nil, fmt.Errorf("create seat map: %w", err)
	}
	return toDetail(rec, doc), nil
}

func (s *Service) Get(ctx context.Context, id, userID string) (*Detail, error) {
	rec, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	doc, err := decode(rec.Document)
	if err != nil {
		return nil, err
	}
	return toDetail(rec, doc), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Summary, error) {
	recs, err := s.repo.ListMaps(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list seat maps: %w", err)
	}
	out := make([]Summary, len(recs))
	for i := range recs {
		out[i] = toSummary(&recs[i])
	}
	return out, nil
}

// Update replaces a map's document. The payload goes through the same
// validation as an import; the stored id always wins over the payload's.
func (s *Service) Update(ctx context.Context, id, userID string, data []byte) (*Detail, error) {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return nil, err
	}
	doc, err := document.Import(data)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return s.save(ctx, doc)
}

// GenerateGrid adds a generated seat block to a stored map.
func (s *Service) GenerateGrid(ctx context.Context, id, userID string, req editor.GridRequest) (*Detail, []string, error) {
	rec, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}
	doc, err := decode(rec.Document)
	if err != nil {
		return nil, nil, err
	}

	ed := editor.New(s.historyLimit)
	if err := ed.Load(doc); err != nil {
		return nil, nil, err
	}
	ids, err := ed.GenerateGrid(req)
	if err != nil {
		return nil, nil, err
	}
	detail, err := s.save(ctx, ed.Document())
	if err != nil {
		return nil, nil, err
	}
	return detail, ids, nil
}

func (s *Service) save(ctx context.Context, doc *document.SeatMap) (*Detail, error) {
	if err := document.Validate(doc); err != nil {
		return nil, err
	}
	data, err := document.Export(doc)
	if err != nil {
		return nil, fmt.Errorf("encode seat map: %w", err)
	}
	rec, err := s.repo.UpdateMap(ctx, store.MapRecord{
		ID:        doc.ID,
		Name:      doc.Name,
		Document:  data,
		SeatCount: len(doc.Seats),
	})
	if err != nil {
		return nil, fmt.Errorf("update seat map: %w", err)
	}
	s.invalidate(ctx, doc.ID)
	return toDetail(rec, doc), nil
}

func (s *Service) SetPublished(ctx context.Context, id, userID string, published bool) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		return fmt.Errorf("publish seat map: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.DeleteMap(ctx, id); err != nil {
		return fmt.Errorf("delete seat map: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

// Export returns the map as a download and a file name for it.
func (s *Service) Export(ctx context.Context, id, userID string) ([]byte, string, error) {
	rec, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, "", err
	}
	doc, err := decode(rec.Document)
	if err != nil {
		return nil, "", err
	}
	data, err := document.Export(doc)
	if err != nil {
		return nil, "", fmt.Errorf("encode seat map: %w", err)
	}
	return data, doc.Name, nil
}

// Authorize checks that userID owns the map.
func (s *Service) Authorize(ctx context.Context, id, userID string) error {
	_, err := s.owned(ctx, id, userID)
	return err
}

// Published returns the JSON of a published map, read through the cache.
func (s *Service) Published(ctx context.Context, id string) (json.RawMessage, error) {
	if data, ok, err := s.cache.Get(ctx, id); err != nil {
		slog.Warn("published cache read failed", "error", err, "map", id)
	} else if ok {
		return data, nil
	}

	data, err := s.repo.GetPublishedDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, id, data); err != nil {
		slog.Warn("published cache write failed", "error", err, "map", id)
	}
	return data, nil
}

// LoadPublished decodes a published map for an embed room.
func (s *Service) LoadPublished(ctx context.Context, id string) (*document.SeatMap, error) {
	data, err := s.Published(ctx, id)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func (s *Service) owned(ctx context.Context, id, userID string) (*store.MapRecord, error) {
	rec, err := s.repo.GetMap(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get seat map: %w", err)
	}
	if rec.OwnerID != userID {
		return nil, ErrForbidden
	}
	return rec, nil
}

func (s *Service) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		slog.Warn("published cache invalidate failed", "error", err, "map", id)
	}
}

func decode(data []byte) (*document.SeatMap, error) {
	var doc document.SeatMap
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode stored seat map: %w", err)
	}
	return &doc, nil
}

func toSummary(rec *store.MapRecord) Summary {
	return Summary{
		ID:        rec.ID,
		Name:      rec.Name,
		SeatCount: rec.SeatCount,
		Published: rec.Published,
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toDetail(rec *store.MapRecord, doc *document.SeatMap) *Detail {
	return &Detail{Summary: toSummary(rec), Document: doc}
}

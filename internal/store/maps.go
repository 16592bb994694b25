package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// MapRecord is one stored seat map. Document holds the exported JSON.
type MapRecord struct {
	ID        string
	OwnerID   string
	Name      string
	Document  json.RawMessage
	SeatCount int
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

const mapColumns = `id, owner_id, name, document, seat_count, published, created_at, updated_at`

func scanMap(sc interface{ Scan(...any) error }, withDoc bool) (*MapRecord, error) {
	var m MapRecord
	var doc []byte
	dest := []any{&m.ID, &m.OwnerID, &m.Name}
	if withDoc {
		dest = append(dest, &doc)
	}
	dest = append(dest, &m.SeatCount, &m.Published, &m.CreatedAt, &m.UpdatedAt)
	if err := sc.Scan(dest...); err != nil {
		return nil, err
	}
	if withDoc {
		m.Document = doc
	}
	return &m, nil
}

func (s *Store) CreateMap(ctx context.Context, m MapRecord) (*MapRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO seat_maps (id, owner_id, name, document, seat_count, published)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+mapColumns,
		m.ID, m.OwnerID, m.Name, []byte(m.Document), m.SeatCount, m.Published)

	out, err := scanMap(row, true)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create map: %w", err)
	}
	return out, nil
}

func (s *Store) GetMap(ctx context.Context, id string) (*MapRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+mapColumns+` FROM seat_maps WHERE id = $1`, id)
	m, err := scanMap(row, true)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("get map: %w", err)
	}
	return m, nil
}

// ListMaps returns the owner's maps, newest first, without their documents.
func (s *Store) ListMaps(ctx context.Context, ownerID string) ([]MapRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, name, seat_count, published, created_at, updated_at
		 FROM seat_maps WHERE owner_id = $1 ORDER BY updated_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	defer rows.Close()

	maps := []MapRecord{}
	for rows.Next() {
		m, err := scanMap(rows, false)
		if err != nil {
			return nil, fmt.Errorf("scan map: %w", err)
		}
		maps = append(maps, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	return maps, nil
}

// UpdateMap replaces the stored document and name of an existing map.
func (s *Store) UpdateMap(ctx context.Context, m MapRecord) (*MapRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE seat_maps SET name = $2, document = $3, seat_count = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+mapColumns,
		m.ID, m.Name, []byte(m.Document), m.SeatCount)

	out, err := scanMap(row, true)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("update map: %w", err)
	}
	return out, nil
}

func (s *Store) SetPublished(ctx context.Context, id string, published bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE seat_maps SET published = $2, updated_at = now() WHERE id = $1`, id, published)
	if err != nil {
		return fmt.Errorf("publish map: %w", err)
	}
	return requireRow(res)
}

func (s *Store) DeleteMap(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM seat_maps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete map: %w", err)
	}
	return requireRow(res)
}

// GetPublishedDocument returns the document of a published map. Unpublished
// maps read as not found.
func (s *Store) GetPublishedDocument(ctx context.Context, id string) (json.RawMessage, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM seat_maps WHERE id = $1 AND published`, id).Scan(&doc)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("get published map: %w", err)
	}
	return doc, nil
}

func requireRow(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

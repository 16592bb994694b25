// Package history keeps a bounded linear undo/redo log of seat-map snapshots.
package history

import "github.com/seatmap/seatmap-editor/backend-go/internal/document"

// DefaultLimit is the number of snapshots retained before the oldest is
// evicted.
const DefaultLimit = 50

// Manager stores deep copies of every committed document. Values it returns
// never alias a stored snapshot.
type Manager struct {
	entries []*document.SeatMap
	cursor  int
	limit   int
}

// New returns an empty manager. A non-positive limit selects DefaultLimit.
func New(limit int) *Manager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Manager{cursor: -1, limit: limit}
}

// Commit appends doc after the cursor, discarding any redo branch.
func (m *Manager) Commit(doc *document.SeatMap) {
	m.entries = append(m.entries[:m.cursor+1], document.MustClone(doc))
	m.cursor = len(m.entries) - 1
	if len(m.entries) > m.limit {
		m.entries[0] = nil
		m.entries = m.entries[1:]
		m.cursor--
	}
}

// Undo steps back one entry. It reports false when there is nothing to undo.
func (m *Manager) Undo() (*document.SeatMap, bool) {
	if !m.CanUndo() {
		return nil, false
	}
	m.cursor--
	return document.MustClone(m.entries[m.cursor]), true
}

// Redo steps forward one entry. It reports false when there is nothing to redo.
func (m *Manager) Redo() (*document.SeatMap, bool) {
	if !m.CanRedo() {
		return nil, false
	}
	m.cursor++
	return document.MustClone(m.entries[m.cursor]), true
}

// Reset discards the log and records doc as its only entry.
func (m *Manager) Reset(doc *document.SeatMap) {
	clear(m.entries)
	m.entries = m.entries[:0]
	m.cursor = -1
	m.Commit(doc)
}

// Current returns a copy of the snapshot at the cursor.
func (m *Manager) Current() (*document.SeatMap, bool) {
	if m.cursor < 0 {
		return nil, false
	}
	return document.MustClone(m.entries[m.cursor]), true
}

// CanUndo reports whether an earlier snapshot exists.
func (m *Manager) CanUndo() bool { return m.cursor > 0 }

// CanRedo reports whether an undone snapshot can be restored.
func (m *Manager) CanRedo() bool { return m.cursor < len(m.entries)-1 }

// Len returns the number of retained snapshots.
func (m *Manager) Len() int { return len(m.entries) }

// Cursor returns the index of the current snapshot, or -1 when empty.
func (m *Manager) Cursor() int { return m.cursor }

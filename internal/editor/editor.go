// Package editor is the editing session: it owns the current seat map, its
// undo history and the selection, and exposes the operations a host UI
// calls in response to pointer, keyboard and dialog input.
package editor

import (
	"errors"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/history"
	"github.com/seatmap/seatmap-editor/backend-go/internal/selection"
)

var (
	ErrNoDocument       = errors.New("no seat map loaded")
	ErrSeatLimit        = errors.New("seat limit reached")
	ErrImageTooLarge    = errors.New("image exceeds size limit")
	ErrUnsupportedImage = errors.New("unsupported image")
)

type Tool string

const (
	ToolSelect  Tool = "select"
	ToolAdd     Tool = "add"
	ToolPan     Tool = "pan"
	ToolGrid    Tool = "grid"
	ToolElement Tool = "element"
)

// Editor is one operator's editing session. It is not safe for concurrent
// use; a host drives it from a single event loop.
type Editor struct {
	doc       *document.SeatMap
	history   *history.Manager
	selection *selection.Set
	tool      Tool
	dirty     bool
}

// New creates an empty session keeping up to historyLimit snapshots.
func New(historyLimit int) *Editor {
	return &Editor{
		history:   history.New(historyLimit),
		selection: selection.NewSet(),
		tool:      ToolSelect,
	}
}

// Load replaces the session document and starts a fresh history.
func (e *Editor) Load(doc *document.SeatMap) error {
	if doc == nil {
		return ErrNoDocument
	}
	e.doc = document.MustClone(doc)
	e.history.Reset(e.doc)
	e.selection.Clear()
	e.dirty = false
	return nil
}

// NewMap starts a session on an empty map.
func (e *Editor) NewMap(name string) {
	_ = e.Load(document.NewEmptySeatMap(name))
}

// Document returns the current seat map. Callers must treat it as read-only
// and go through Editor operations to change it.
func (e *Editor) Document() *document.SeatMap { return e.doc }

func (e *Editor) Selection() []string { return e.selection.IDs() }

func (e *Editor) IsSelected(id string) bool { return e.selection.Contains(id) }

// SelectedSeats returns the selected seats in document order.
func (e *Editor) SelectedSeats() []document.Seat {
	if e.doc == nil {
		return nil
	}
	return e.doc.SeatsByID(e.selection.IDs())
}

func (e *Editor) Tool() Tool { return e.tool }

func (e *Editor) SetTool(t Tool) { e.tool = t }

// Dirty reports whether the document changed since it was loaded or saved.
func (e *Editor) Dirty() bool { return e.dirty }

// MarkSaved clears the dirty flag after the host persisted the document.
func (e *Editor) MarkSaved() { e.dirty = false }

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Undo restores the previous snapshot and clears the selection.
func (e *Editor) Undo() bool {
	doc, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.doc = doc
	e.selection.Clear()
	e.dirty = true
	return true
}

// Redo restores the next snapshot and clears the selection.
func (e *Editor) Redo() bool {
	doc, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.doc = doc
	e.selection.Clear()
	e.dirty = true
	return true
}

// commit makes next the current document and records it in history.
func (e *Editor) commit(next *document.SeatMap) {
	e.doc = next
	e.history.Commit(next)
	e.dirty = true
}

// apply commits a batch of seat patches as one history entry. An empty
// batch is a no-op and reports false.
func (e *Editor) apply(updates []document.SeatUpdate) bool {
	if len(updates) == 0 {
		return false
	}
	e.commit(document.BatchUpdateSeats(e.doc, updates))
	return true
}

// pruneSelection drops selected ids that no longer exist.
func (e *Editor) pruneSelection() {
	e.selection.Retain(func(id string) bool {
		_, ok := e.doc.Seat(id)
		return ok
	})
}

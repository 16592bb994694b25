package editor

import (
	"log/slog"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
)

// Import replaces the session with a serialized seat map. A rejected
// payload leaves the current document and history untouched.
func (e *Editor) Import(data []byte) error {
	doc, err := document.Import(data)
	if err != nil {
		slog.Debug("import rejected", "error", err)
		return err
	}
	e.doc = doc
	e.history.Reset(doc)
	e.selection.Clear()
	e.dirty = true
	return nil
}

// Export serializes the current document in the import format.
func (e *Editor) Export() ([]byte, error) {
	if e.doc == nil {
		return nil, ErrNoDocument
	}
	return document.Export(e.doc)
}

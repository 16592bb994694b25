package editor

import (
	"fmt"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/geometry"
	"github.com/seatmap/seatmap-editor/backend-go/internal/selection"
	"github.com/seatmap/seatmap-editor/backend-go/internal/typeid"
)

// AddSeats appends seats in one history entry.
func (e *Editor) AddSeats(seats ...document.Seat) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if len(seats) == 0 {
		return nil
	}
	if len(e.doc.Seats)+len(seats) > document.MaxSeats {
		return fmt.Errorf("add %d seats: %w", len(seats), ErrSeatLimit)
	}
	e.commit(document.AddSeats(e.doc, seats...))
	return nil
}

// AddSeatAt places a seat of the default size with its top-left corner at
// p, labelled S<n+1>.
func (e *Editor) AddSeatAt(p geometry.Point) (document.Seat, error) {
	if e.doc == nil {
		return document.Seat{}, ErrNoDocument
	}
	size := e.doc.SeatSizeOrDefault()
	seat := document.Seat{
		ID:     typeid.NewSeatID(),
		Label:  fmt.Sprintf("S%d", len(e.doc.Seats)+1),
		X:      p.X,
		Y:      p.Y,
		W:      size.W,
		H:      size.H,
		Status: document.StatusAvailable,
	}
	if err := e.AddSeats(seat); err != nil {
		return document.Seat{}, err
	}
	return seat, nil
}

// UpdateSeats applies one patch to the given seats in one history entry.
func (e *Editor) UpdateSeats(ids []string, patch document.SeatPatch) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if patch.IsEmpty() || len(e.doc.SeatsByID(ids)) == 0 {
		return nil
	}
	e.commit(document.UpdateSeats(e.doc, ids, patch))
	return nil
}

// MoveSeat records the drop position of a dragged seat.
func (e *Editor) MoveSeat(id string, to geometry.Point) error {
	return e.UpdateSeats([]string{id}, document.SeatPatch{X: document.Ptr(to.X), Y: document.Ptr(to.Y)})
}

// DeleteSeats removes seats in one history entry and deselects them.
func (e *Editor) DeleteSeats(ids []string) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if len(e.doc.SeatsByID(ids)) == 0 {
		return nil
	}
	e.commit(document.DeleteSeats(e.doc, ids))
	e.pruneSelection()
	return nil
}

// DeleteSelection removes every selected seat in one history entry.
func (e *Editor) DeleteSelection() error {
	if err := e.DeleteSeats(e.selection.IDs()); err != nil {
		return err
	}
	e.selection.Clear()
	return nil
}

// ClickCanvas handles a click on empty canvas at p. The add tool places a
// seat, the select tool clears the selection.
func (e *Editor) ClickCanvas(p geometry.Point) error {
	switch e.tool {
	case ToolAdd:
		_, err := e.AddSeatAt(p)
		return err
	case ToolSelect:
		e.selection.Clear()
	}
	return nil
}

// ClickSeat handles a click on a seat with the select tool. Shift toggles
// the seat; a plain click selects it alone.
func (e *Editor) ClickSeat(id string, shift bool) {
	if e.tool != ToolSelect || e.doc == nil {
		return
	}
	if _, ok := e.doc.Seat(id); !ok {
		return
	}
	if shift {
		e.selection.Toggle(id)
		return
	}
	e.selection.Replace(id)
}

// ClickAt hit-tests p and forwards to ClickSeat or ClickCanvas.
func (e *Editor) ClickAt(p geometry.Point, shift bool) error {
	if e.doc != nil {
		if id, ok := selection.HitTest(e.doc.Seats, p); ok {
			e.ClickSeat(id, shift)
			return nil
		}
	}
	return e.ClickCanvas(p)
}

// Lasso selects seats whose centers fall in the rectangle from a to b.
// Drags shorter than selection.MinLassoDrag are ignored.
func (e *Editor) Lasso(a, b geometry.Point, additive bool) []string {
	if e.doc == nil || !selection.IsLassoDrag(a, b) {
		return nil
	}
	hits := selection.Lasso(e.doc.Seats, a, b)
	selection.ApplyLasso(e.selection, hits, additive)
	return hits
}

// Select replaces the selection with the existing seats among ids.
func (e *Editor) Select(ids ...string) {
	if e.doc == nil {
		return
	}
	e.selection.Clear()
	for _, s := range e.doc.SeatsByID(ids) {
		e.selection.Add(s.ID)
	}
}

func (e *Editor) SelectAll() {
	if e.doc == nil {
		return
	}
	e.selection.Clear()
	for _, s := range e.doc.Seats {
		e.selection.Add(s.ID)
	}
}

func (e *Editor) ClearSelection() { e.selection.Clear() }

// SelectionBounds returns the union rectangle of the selected seats.
func (e *Editor) SelectionBounds() (geometry.Rect, bool) {
	if e.doc == nil {
		return geometry.Rect{}, false
	}
	return selection.Bounds(e.doc, e.selection.IDs())
}

// Navigate moves keyboard focus from seat id in dir and returns the new
// seat id.
func (e *Editor) Navigate(id string, dir selection.Direction) (string, bool) {
	if e.doc == nil {
		return "", false
	}
	return selection.Neighbor(e.doc.Seats, id, dir)
}

// ReadingOrder lists the seats row by row for sequential access.
func (e *Editor) ReadingOrder() []document.Seat {
	if e.doc == nil {
		return nil
	}
	return selection.ReadingOrder(e.doc.Seats)
}

package editor

import (
	"fmt"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/selection"
	"github.com/seatmap/seatmap-editor/backend-go/internal/transform"
)

// AlignSelection aligns the selected seats to edge. It reports whether a
// history entry was created.
func (e *Editor) AlignSelection(edge transform.Edge) bool {
	if e.doc == nil {
		return false
	}
	return e.apply(transform.Align(e.doc, e.selection.IDs(), edge))
}

func (e *Editor) CenterSelection(axis transform.Axis) bool {
	if e.doc == nil {
		return false
	}
	return e.apply(transform.Center(e.doc, e.selection.IDs(), axis))
}

// CanDistribute reports whether enough seats are selected to distribute.
func (e *Editor) CanDistribute() bool {
	return len(e.SelectedSeats()) >= transform.MinDistributeSeats
}

func (e *Editor) DistributeSelection(axis transform.Axis) bool {
	if e.doc == nil {
		return false
	}
	return e.apply(transform.Distribute(e.doc, e.selection.IDs(), axis))
}

func (e *Editor) SetSelectionSize(w, h float64) bool {
	if e.doc == nil {
		return false
	}
	return e.apply(transform.SetSize(e.doc, e.selection.IDs(), w, h))
}

func (e *Editor) SetSelectionStatus(status document.SeatStatus) bool {
	if e.doc == nil {
		return false
	}
	return e.apply(transform.SetStatus(e.doc, e.selection.IDs(), status))
}

func (e *Editor) SetSelectionCategory(categoryID string) bool {
	if e.doc == nil {
		return false
	}
	return e.apply(transform.SetCategory(e.doc, e.selection.IDs(), categoryID))
}

func (e *Editor) SetSelectionZone(zoneID string) bool {
	if e.doc == nil {
		return false
	}
	return e.apply(transform.SetZone(e.doc, e.selection.IDs(), zoneID))
}

// MoveSelection shifts the selected seats by (dx, dy) in one entry, as at
// the end of a group drag.
func (e *Editor) MoveSelection(dx, dy float64) bool {
	if e.doc == nil {
		return false
	}
	return e.apply(transform.Nudge(e.doc, e.selection.IDs(), dx, dy))
}

// NudgeSelection moves the selection one step in dir. Coarse selects the
// large step.
func (e *Editor) NudgeSelection(dir selection.Direction, coarse bool) bool {
	step := transform.NudgeStep(coarse)
	switch dir {
	case selection.Left:
		return e.MoveSelection(-step, 0)
	case selection.Right:
		return e.MoveSelection(step, 0)
	case selection.Up:
		return e.MoveSelection(0, -step)
	case selection.Down:
		return e.MoveSelection(0, step)
	}
	return false
}

// DuplicateSelection copies the selected seats in one entry and selects
// the copies.
func (e *Editor) DuplicateSelection() ([]string, error) {
	if e.doc == nil {
		return nil, ErrNoDocument
	}
	copies := transform.Duplicate(e.doc, e.selection.IDs())
	if len(copies) == 0 {
		return nil, nil
	}
	if err := e.AddSeats(copies...); err != nil {
		return nil, err
	}
	ids := make([]string, len(copies))
	for i, c := range copies {
		ids[i] = c.ID
	}
	e.selection.Replace(ids...)
	return ids, nil
}

// GridRequest is a grid generation dialog submission.
type GridRequest struct {
	transform.GridOptions
	ShowRowNumbers    bool `json:"showRowNumbers"`
	ShowColumnHeaders bool `json:"showColumnHeaders"`
}

// GenerateGrid adds a generated block of seats in one history entry. On a
// map without categories the default categories the grid uses are added,
// and the grid layout is recorded in the grid config and settings.
func (e *Editor) GenerateGrid(req GridRequest) ([]string, error) {
	if e.doc == nil {
		return nil, ErrNoDocument
	}
	opts := req.GridOptions
	size := e.doc.SeatSizeOrDefault()
	if opts.SeatW == 0 {
		opts.SeatW = size.W
	}
	if opts.SeatH == 0 {
		opts.SeatH = size.H
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	n := opts.SeatCount()
	if len(e.doc.Seats)+n > document.MaxSeats {
		return nil, fmt.Errorf("generate %d seats: %w", n, ErrSeatLimit)
	}

	res := transform.Grid(opts)
	next := e.doc
	if len(next.Categories) == 0 {
		used := map[string]bool{}
		for _, id := range req.UsedCategories() {
			used[id] = true
		}
		for _, c := range document.DefaultCategories() {
			if used[c.ID] {
				next = document.AddCategory(next, c)
			}
		}
		if len(next.Categories) > 0 {
			next = document.UpdateGridConfig(next, document.GridConfigPatch{
				ColumnLabels:         res.ColumnLabels,
				AisleAfterColumns:    res.AisleAfterColumns,
				AisleWidth:           document.Ptr(req.AisleWidth),
				RowNumbersVisible:    document.Ptr(req.ShowRowNumbers),
				ColumnHeadersVisible: document.Ptr(req.ShowColumnHeaders),
			})
			next = document.UpdateSettings(next, document.SettingsPatch{
				ShowRowNumbers:    document.Ptr(req.ShowRowNumbers),
				ShowColumnHeaders: document.Ptr(req.ShowColumnHeaders),
				ShowLegend:        document.Ptr(true),
			})
		}
	}
	e.commit(document.AddSeats(next, res.Seats...))

	ids := make([]string, len(res.Seats))
	for i, s := range res.Seats {
		ids[i] = s.ID
	}
	return ids, nil
}

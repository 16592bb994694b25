package transform

import (
	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/typeid"
)

const (
	NudgeFine   = 0.001
	NudgeCoarse = 0.01

	// DuplicateOffset shifts copies right so they do not cover the originals.
	DuplicateOffset = 0.02
	// DuplicateSuffix is appended to the label of every copy.
	DuplicateSuffix = "'"
)

// NudgeStep returns the nudge distance for the modifier state.
func NudgeStep(coarse bool) float64 {
	if coarse {
		return NudgeCoarse
	}
	return NudgeFine
}

// Bulk applies the same patch to every seat in ids that exists.
func Bulk(m *document.SeatMap, ids []string, patch document.SeatPatch) []document.SeatUpdate {
	if patch.IsEmpty() {
		return nil
	}
	seats := m.SeatsByID(ids)
	out := make([]document.SeatUpdate, 0, len(seats))
	for _, s := range seats {
		out = append(out, document.SeatUpdate{ID: s.ID, Patch: patch})
	}
	return out
}

func SetSize(m *document.SeatMap, ids []string, w, h float64) []document.SeatUpdate {
	return Bulk(m, ids, document.SeatPatch{W: document.Ptr(w), H: document.Ptr(h)})
}

func SetStatus(m *document.SeatMap, ids []string, status document.SeatStatus) []document.SeatUpdate {
	return Bulk(m, ids, document.SeatPatch{Status: document.Ptr(status)})
}

// SetCategory assigns categoryID to the seats. An empty id clears it.
func SetCategory(m *document.SeatMap, ids []string, categoryID string) []document.SeatUpdate {
	return Bulk(m, ids, document.SeatPatch{CategoryID: document.Ptr(categoryID)})
}

// SetZone assigns zoneID to the seats. An empty id clears it.
func SetZone(m *document.SeatMap, ids []string, zoneID string) []document.SeatUpdate {
	return Bulk(m, ids, document.SeatPatch{ZoneID: document.Ptr(zoneID)})
}

// Nudge shifts every seat by (dx, dy). Results are not clamped to the canvas.
func Nudge(m *document.SeatMap, ids []string, dx, dy float64) []document.SeatUpdate {
	if dx == 0 && dy == 0 {
		return nil
	}
	seats := m.SeatsByID(ids)
	out := make([]document.SeatUpdate, 0, len(seats))
	for _, s := range seats {
		out = append(out, document.SeatUpdate{ID: s.ID, Patch: document.SeatPatch{
			X: document.Ptr(s.X + dx),
			Y: document.Ptr(s.Y + dy),
		}})
	}
	return out
}

// Duplicate copies the seats with fresh ids, shifted right by
// DuplicateOffset. Copies are available and their labels carry
// DuplicateSuffix, trimmed to the label limit.
func Duplicate(m *document.SeatMap, ids []string) []document.Seat {
	seats := m.SeatsByID(ids)
	out := make([]document.Seat, 0, len(seats))
	for _, s := range seats {
		c := document.CloneSeat(s)
		c.ID = typeid.NewSeatID()
		c.X = s.X + DuplicateOffset
		c.Label = duplicateLabel(s.Label)
		c.Status = document.StatusAvailable
		out = append(out, c)
	}
	return out
}

func duplicateLabel(label string) string {
	suffix := []rune(DuplicateSuffix)
	runes := []rune(label)
	if keep := document.MaxLabelLength - len(suffix); len(runes) > keep {
		runes = runes[:keep]
	}
	return string(runes) + DuplicateSuffix
}

// Package transform computes batch geometric edits over seat sets. Every
// operation returns per-seat patches for document.BatchUpdateSeats so one
// history entry captures the whole edit.
package transform

import (
	"math"
	"sort"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
)

type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

type Axis string

const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// MinDistributeSeats is the smallest set Distribute acts on.
const MinDistributeSeats = 3

// epsilon is the distance below which a seat counts as already in place.
const epsilon = 1e-9

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// Align moves the seats so the chosen edge lines up with the outermost one.
// Seats already on the target produce no patch.
func Align(m *document.SeatMap, ids []string, edge Edge) []document.SeatUpdate {
	seats := m.SeatsByID(ids)
	if len(seats) < 2 {
		return nil
	}

	var target float64
	switch edge {
	case EdgeLeft:
		target = seats[0].X
		for _, s := range seats[1:] {
			target = min(target, s.X)
		}
	case EdgeRight:
		target = seats[0].X + seats[0].W
		for _, s := range seats[1:] {
			target = max(target, s.X+s.W)
		}
	case EdgeTop:
		target = seats[0].Y
		for _, s := range seats[1:] {
			target = min(target, s.Y)
		}
	case EdgeBottom:
		target = seats[0].Y + seats[0].H
		for _, s := range seats[1:] {
			target = max(target, s.Y+s.H)
		}
	default:
		return nil
	}

	var out []document.SeatUpdate
	for _, s := range seats {
		var p document.SeatPatch
		switch edge {
		case EdgeLeft:
			if !nearlyEqual(s.X, target) {
				p.X = document.Ptr(target)
			}
		case EdgeRight:
			if !nearlyEqual(s.X+s.W, target) {
				p.X = document.Ptr(target - s.W)
			}
		case EdgeTop:
			if !nearlyEqual(s.Y, target) {
				p.Y = document.Ptr(target)
			}
		case EdgeBottom:
			if !nearlyEqual(s.Y+s.H, target) {
				p.Y = document.Ptr(target - s.H)
			}
		}
		if !p.IsEmpty() {
			out = append(out, document.SeatUpdate{ID: s.ID, Patch: p})
		}
	}
	return out
}

// Center moves every seat so its center sits on the mean center of the set
// along axis. All seats are patched, centered or not.
func Center(m *document.SeatMap, ids []string, axis Axis) []document.SeatUpdate {
	seats := m.SeatsByID(ids)
	if len(seats) < 2 {
		return nil
	}

	var sum float64
	for _, s := range seats {
		cx, cy := s.Center()
		if axis == Horizontal {
			sum += cx
		} else {
			sum += cy
		}
	}
	mean := sum / float64(len(seats))

	out := make([]document.SeatUpdate, 0, len(seats))
	for _, s := range seats {
		var p document.SeatPatch
		if axis == Horizontal {
			p.X = document.Ptr(mean - s.W/2)
		} else {
			p.Y = document.Ptr(mean - s.H/2)
		}
		out = append(out, document.SeatUpdate{ID: s.ID, Patch: p})
	}
	return out
}

// Distribute spaces the seats so the gaps between neighbours along axis are
// equal. The outermost seats stay put. Fewer than MinDistributeSeats seats
// is a no-op. Overlapping seats give a negative gap, which is kept.
func Distribute(m *document.SeatMap, ids []string, axis Axis) []document.SeatUpdate {
	seats := m.SeatsByID(ids)
	if len(seats) < MinDistributeSeats {
		return nil
	}

	pos := func(s document.Seat) float64 {
		if axis == Horizontal {
			return s.X
		}
		return s.Y
	}
	size := func(s document.Seat) float64 {
		if axis == Horizontal {
			return s.W
		}
		return s.H
	}

	sort.SliceStable(seats, func(i, j int) bool { return pos(seats[i]) < pos(seats[j]) })

	first, last := seats[0], seats[len(seats)-1]
	var sumSizes float64
	for _, s := range seats {
		sumSizes += size(s)
	}
	span := pos(last) + size(last) - pos(first)
	gap := (span - sumSizes) / float64(len(seats)-1)

	var out []document.SeatUpdate
	cursor := pos(first)
	for i, s := range seats {
		if i > 0 && i < len(seats)-1 && !nearlyEqual(pos(s), cursor) {
			var p document.SeatPatch
			if axis == Horizontal {
				p.X = document.Ptr(cursor)
			} else {
				p.Y = document.Ptr(cursor)
			}
			out = append(out, document.SeatUpdate{ID: s.ID, Patch: p})
		}
		cursor += size(s) + gap
	}
	return out
}

package render

import (
	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/geometry"
)

// HitTest returns the topmost seat under a canvas pixel, matching the
// boxes Compile draws.
func HitTest(m *document.SeatMap, canvas geometry.Size, p geometry.Point) (string, bool) {
	if m == nil {
		return "", false
	}
	for i := len(m.Seats) - 1; i >= 0; i-- {
		t, w, h := seatBox(m.Seats[i], canvas)
		local := t.Invert().Apply(p)
		if (geometry.Rect{Width: w, Height: h}).Contains(local.X, local.Y) {
			return m.Seats[i].ID, true
		}
	}
	return "", false
}

// SelectionBounds returns the pixel box around the given seats.
func SelectionBounds(m *document.SeatMap, canvas geometry.Size, ids []string) (geometry.Rect, bool) {
	var out geometry.Rect
	found := false
	if m == nil {
		return out, false
	}
	for _, s := range m.SeatsByID(ids) {
		t, w, h := seatBox(s, canvas)
		corners := []geometry.Point{{}, {X: w}, {Y: h}, {X: w, Y: h}}
		for _, c := range corners {
			q := t.Apply(c)
			r := geometry.Rect{X: q.X, Y: q.Y}
			if !found {
				out, found = r, true
				continue
			}
			out = unionPoint(out, q)
		}
	}
	return out, found
}

func unionPoint(r geometry.Rect, p geometry.Point) geometry.Rect {
	minX, minY := min(r.X, p.X), min(r.Y, p.Y)
	maxX, maxY := max(r.Right(), p.X), max(r.Bottom(), p.Y)
	return geometry.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

package selection

import (
	"math"
	"sort"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/geometry"
)

const (
	// MinLassoDrag is the smallest drag, on both axes, treated as a lasso
	// rather than a click.
	MinLassoDrag = 0.005
	// RowTolerance groups seats into one row, and is the minimum offset a
	// navigation candidate needs in the travel direction.
	RowTolerance = 0.005
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// IsLassoDrag reports whether the drag from a to b is large enough to select.
func IsLassoDrag(a, b geometry.Point) bool {
	r := geometry.RectFromCorners(a, b)
	return r.Width >= MinLassoDrag || r.Height >= MinLassoDrag
}

// Lasso returns the ids of seats whose center lies inside the rectangle
// spanned by a and b, edges included. Corner order does not matter.
func Lasso(seats []document.Seat, a, b geometry.Point) []string {
	r := geometry.RectFromCorners(a, b)
	var hits []string
	for _, s := range seats {
		cx, cy := s.Center()
		if r.Contains(cx, cy) {
			hits = append(hits, s.ID)
		}
	}
	return hits
}

// ApplyLasso updates sel with a lasso result. Additive mode unions with the
// existing selection; otherwise the hits replace it.
func ApplyLasso(sel *Set, hits []string, additive bool) {
	if additive {
		sel.Add(hits...)
		return
	}
	sel.Replace(hits...)
}

// Neighbor finds the nearest seat from currentID in dir. Candidates must be
// more than RowTolerance away along the travel axis; the closest by
// Euclidean distance between seat origins wins. It reports false at the
// layout edge or for an unknown id.
func Neighbor(seats []document.Seat, currentID string, dir Direction) (string, bool) {
	var cur *document.Seat
	for i := range seats {
		if seats[i].ID == currentID {
			cur = &seats[i]
			break
		}
	}
	if cur == nil {
		return "", false
	}

	best, bestDist := "", math.Inf(1)
	for _, s := range seats {
		if s.ID == currentID {
			continue
		}
		dx, dy := s.X-cur.X, s.Y-cur.Y
		var ok bool
		switch dir {
		case Left:
			ok = dx < -RowTolerance
		case Right:
			ok = dx > RowTolerance
		case Up:
			ok = dy < -RowTolerance
		case Down:
			ok = dy > RowTolerance
		}
		if !ok {
			continue
		}
		if d := math.Hypot(dx, dy); d < bestDist {
			best, bestDist = s.ID, d
		}
	}
	return best, best != ""
}

// ReadingOrder returns the seats sorted row by row, then left to right.
// Seats whose y differs by at most RowTolerance share a row.
func ReadingOrder(seats []document.Seat) []document.Seat {
	out := append([]document.Seat(nil), seats...)
	sort.SliceStable(out, func(i, j int) bool {
		dy := out[i].Y - out[j].Y
		if math.Abs(dy) > RowTolerance {
			return dy < 0
		}
		return out[i].X < out[j].X
	})
	return out
}

// HitTest returns the topmost seat containing p. Later seats paint over
// earlier ones, so the search runs back to front. Rotation is about the
// seat center.
func HitTest(seats []document.Seat, p geometry.Point) (string, bool) {
	for i := len(seats) - 1; i >= 0; i-- {
		s := seats[i]
		q := p
		if s.R != 0 {
			cx, cy := s.Center()
			q = geometry.RotateAround(-s.R, geometry.Point{X: cx, Y: cy}).Apply(p)
		}
		if document.SeatRect(s).Contains(q.X, q.Y) {
			return s.ID, true
		}
	}
	return "", false
}

// Bounds returns the union rectangle of the selected seats.
func Bounds(m *document.SeatMap, ids []string) (geometry.Rect, bool) {
	return document.SeatsBounds(m.SeatsByID(ids))
}

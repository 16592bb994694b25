package document

import (
	"sort"

	"github.com/seatmap/seatmap-editor/backend-go/internal/geometry"
)

func (m *SeatMap) Seat(id string) (Seat, bool) {
	for _, s := range m.Seats {
		if s.ID == id {
			return s, true
		}
	}
	return Seat{}, false
}

// SeatsByID returns the seats whose ids appear in ids, in document order.
func (m *SeatMap) SeatsByID(ids []string) []Seat {
	set := idSet(ids)
	out := make([]Seat, 0, len(ids))
	for _, s := range m.Seats {
		if _, ok := set[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (m *SeatMap) Category(id string) (Category, bool) {
	for _, c := range m.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (m *SeatMap) Zone(id string) (Zone, bool) {
	for _, z := range m.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

func (m *SeatMap) Element(id string) (Element, bool) {
	for _, el := range m.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

// SeatRect returns the seat rectangle in normalized space.
func SeatRect(s Seat) geometry.Rect {
	return geometry.Rect{X: s.X, Y: s.Y, Width: s.W, Height: s.H}
}

// SeatsBounds returns the union rectangle of seats.
func SeatsBounds(seats []Seat) (geometry.Rect, bool) {
	if len(seats) == 0 {
		return geometry.Rect{}, false
	}
	r := SeatRect(seats[0])
	for _, s := range seats[1:] {
		r = r.Union(SeatRect(s))
	}
	return r, true
}

// ZoneBounds derives the visual bounds of a zone from the seats that
// reference it, padded by ZoneMargin. It reports false for an unused zone.
func (m *SeatMap) ZoneBounds(zoneID string) (geometry.Rect, bool) {
	var seats []Seat
	for _, s := range m.Seats {
		if s.ZoneID == zoneID {
			seats = append(seats, s)
		}
	}
	r, ok := SeatsBounds(seats)
	if !ok {
		return geometry.Rect{}, false
	}
	return r.Expand(ZoneMargin), true
}

// SortedCategories orders categories by Order. Categories without an order
// sort after ordered ones; ties keep insertion order.
func (m *SeatMap) SortedCategories() []Category {
	out := append([]Category(nil), m.Categories...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Order, out[j].Order
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return out
}

// RowGroup is the set of seats stamped with one grid row number.
type RowGroup struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

// RowGroups groups seats by their row number in ascending row order. Seats
// without a row are omitted.
func (m *SeatMap) RowGroups() []RowGroup {
	index := map[int]int{}
	var groups []RowGroup
	for _, s := range m.Seats {
		if s.Row == nil {
			continue
		}
		i, ok := index[*s.Row]
		if !ok {
			i = len(groups)
			index[*s.Row] = i
			groups = append(groups, RowGroup{Row: *s.Row})
		}
		groups[i].Seats = append(groups[i].Seats, s)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Row < groups[j].Row })
	return groups
}

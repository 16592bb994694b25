package selection

import (
	"testing"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seatCentered places a 0.02 seat with its center on (cx, cy).
func seatCentered(id string, cx, cy float64) document.Seat {
	return document.Seat{ID: id, Label: id, X: cx - 0.01, Y: cy - 0.01, W: 0.02, H: 0.02}
}

func TestSetKeepsOrderAndUniqueness(t *testing.T) {
	s := NewSet("a", "b", "a")
	s.Add("c", "b")

	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
	assert.Equal(t, []string{"b"}, s.Remove("b", "zzz"))
	assert.Equal(t, []string{"a", "c"}, s.IDs())

	assert.False(t, s.Toggle("a"))
	assert.True(t, s.Toggle("d"))
	assert.Equal(t, []string{"c", "d"}, s.IDs())

	s.Replace("x")
	assert.Equal(t, []string{"x"}, s.IDs())
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
}

func TestSetRetain(t *testing.T) {
	s := NewSet("a", "b", "c")

	dropped := s.Retain(func(id string) bool { return id != "b" })

	assert.Equal(t, []string{"b"}, dropped)
	assert.Equal(t, []string{"a", "c"}, s.IDs())
}

func TestLassoIncludesBoundary(t *testing.T) {
	seats := []document.Seat{
		seatCentered("inside", 0.1, 0.1),
		seatCentered("outside", 0.6, 0.6),
		seatCentered("edge", 0.5, 0.5),
	}

	hits := Lasso(seats, geometry.Point{X: 0.5, Y: 0.5}, geometry.Point{X: 0, Y: 0})

	require.Len(t, hits, 2)
	assert.Equal(t, "inside", hits[0])
	assert.Equal(t, "edge", hits[1])
}

func TestLassoMinimumDrag(t *testing.T) {
	assert.False(t, IsLassoDrag(geometry.Point{X: 0.1, Y: 0.1}, geometry.Point{X: 0.103, Y: 0.098}))
	assert.True(t, IsLassoDrag(geometry.Point{X: 0.1, Y: 0.1}, geometry.Point{X: 0.1, Y: 0.2}))
}

func TestApplyLasso(t *testing.T) {
	sel := NewSet("a", "b")

	ApplyLasso(sel, []string{"b", "c"}, true)
	assert.Equal(t, []string{"a", "b", "c"}, sel.IDs())

	ApplyLasso(sel, []string{"d"}, false)
	assert.Equal(t, []string{"d"}, sel.IDs())
}

func gridSeats() []document.Seat {
	// A1 B1 C1
	// A2    C2
	return []document.Seat{
		{ID: "A1", Label: "A1", X: 0.1, Y: 0.1, W: 0.02, H: 0.02},
		{ID: "B1", Label: "B1", X: 0.13, Y: 0.102, W: 0.02, H: 0.02},
		{ID: "C1", Label: "C1", X: 0.18, Y: 0.1, W: 0.02, H: 0.02},
		{ID: "A2", Label: "A2", X: 0.1, Y: 0.14, W: 0.02, H: 0.02},
		{ID: "C2", Label: "C2", X: 0.18, Y: 0.14, W: 0.02, H: 0.02},
	}
}

func TestNeighbor(t *testing.T) {
	seats := gridSeats()

	cases := []struct {
		from string
		dir  Direction
		want string
		ok   bool
	}{
		{"A1", Right, "B1", true},
		{"B1", Right, "C1", true},
		{"C1", Right, "", false},
		{"A1", Left, "", false},
		{"A1", Down, "A2", true},
		{"A2", Up, "A1", true},
		{"B1", Down, "A2", true},
		{"A1", Up, "", false},
		{"missing", Down, "", false},
	}
	for _, tc := range cases {
		got, ok := Neighbor(seats, tc.from, tc.dir)
		assert.Equal(t, tc.ok, ok, "%s %s", tc.from, tc.dir)
		assert.Equal(t, tc.want, got, "%s %s", tc.from, tc.dir)
	}
}

func TestReadingOrder(t *testing.T) {
	seats := gridSeats()
	shuffled := []document.Seat{seats[4], seats[1], seats[3], seats[2], seats[0]}

	var ids []string
	for _, s := range ReadingOrder(shuffled) {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"A1", "B1", "C1", "A2", "C2"}, ids)
	assert.Equal(t, "C2", shuffled[0].ID)
}

func TestHitTest(t *testing.T) {
	seats := []document.Seat{
		{ID: "under", X: 0.1, Y: 0.1, W: 0.05, H: 0.05},
		{ID: "over", X: 0.12, Y: 0.12, W: 0.05, H: 0.05},
		{ID: "rotated", X: 0.5, Y: 0.5, W: 0.1, H: 0.02, R: 90},
	}

	id, ok := HitTest(seats, geometry.Point{X: 0.13, Y: 0.13})
	require.True(t, ok)
	assert.Equal(t, "over", id)

	id, _ = HitTest(seats, geometry.Point{X: 0.105, Y: 0.105})
	assert.Equal(t, "under", id)

	id, ok = HitTest(seats, geometry.Point{X: 0.55, Y: 0.47})
	require.True(t, ok)
	assert.Equal(t, "rotated", id)

	_, ok = HitTest(seats, geometry.Point{X: 0.52, Y: 0.51})
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	m := &document.SeatMap{Seats: gridSeats()}

	r, ok := Bounds(m, []string{"A1", "C2"})
	require.True(t, ok)
	assert.InDelta(t, 0.1, r.X, 1e-12)
	assert.InDelta(t, 0.1, r.Width, 1e-12)
	assert.InDelta(t, 0.06, r.Height, 1e-12)

	_, ok = Bounds(m, nil)
	assert.False(t, ok)
}

func TestToggleForViewer(t *testing.T) {
	open := document.Seat{ID: "a"}
	other := document.Seat{ID: "b", Status: document.StatusReserved}
	sold := document.Seat{ID: "s", Status: document.StatusSold}
	blocked := document.Seat{ID: "x", Status: document.StatusBlocked}
	multi := document.Settings{AllowMultiSelect: true}

	t.Run("sold and blocked are not selectable", func(t *testing.T) {
		sel := NewSet()
		assert.False(t, ToggleForViewer(sel, sold, multi).Changed())
		assert.False(t, ToggleForViewer(sel, blocked, multi).Changed())
		assert.Equal(t, 0, sel.Len())
	})

	t.Run("toggle off", func(t *testing.T) {
		sel := NewSet("a")
		res := ToggleForViewer(sel, open, multi)
		assert.Equal(t, []string{"a"}, res.Removed)
		assert.Equal(t, 0, sel.Len())
	})

	t.Run("single select replaces", func(t *testing.T) {
		sel := NewSet("a")
		res := ToggleForViewer(sel, other, document.Settings{})
		assert.Equal(t, []string{"b"}, res.Added)
		assert.Equal(t, []string{"a"}, res.Removed)
		assert.Equal(t, []string{"b"}, sel.IDs())
	})

	t.Run("max selectable", func(t *testing.T) {
		sel := NewSet("a")
		res := ToggleForViewer(sel, other, document.Settings{AllowMultiSelect: true, MaxSelectable: 1})
		assert.False(t, res.Changed())
		assert.Equal(t, []string{"a"}, sel.IDs())
	})
}

func TestDescribe(t *testing.T) {
	m := &document.SeatMap{
		Categories: []document.Category{{ID: "p", Name: "Premium", Price: document.Ptr(50.0)}},
		Zones:      []document.Zone{{ID: "z", Name: "Zone A", Price: document.Ptr(20.0)}},
	}

	s := document.Seat{ID: "1", Label: "A1", CategoryID: "p", ZoneID: "z", Row: document.Ptr(1)}
	assert.Equal(t, "Seat A1, available, Premium, Zone A, Row 1, $50", Describe(m, s))

	zoneOnly := document.Seat{ID: "2", Label: "B2", ZoneID: "z", Status: document.StatusSold}
	assert.Equal(t, "Seat B2, sold, Zone A, $20", Describe(m, zoneOnly))

	dangling := document.Seat{ID: "3", Label: "C3", CategoryID: "gone"}
	assert.Equal(t, "Seat C3, available", Describe(m, dangling))
}

package transform

import (
	"testing"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatAt(id string, x, y float64) document.Seat {
	return document.Seat{ID: id, Label: id, X: x, Y: y, W: 0.05, H: 0.05}
}

func mapOf(seats ...document.Seat) *document.SeatMap {
	return &document.SeatMap{ID: "map_1", Version: document.SchemaVersion, Name: "t", Seats: seats}
}

func apply(m *document.SeatMap, updates []document.SeatUpdate) *document.SeatMap {
	return document.BatchUpdateSeats(m, updates)
}

func TestAlignLeft(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.3, 0.2), seatAt("c", 0.2, 0.3))

	updates := Align(m, []string{"a", "b", "c"}, EdgeLeft)
	assert.Len(t, updates, 2, "seat already on the edge is not patched")

	out := apply(m, updates)
	for _, s := range out.Seats {
		assert.Equal(t, 0.1, s.X, s.ID)
	}
}

func TestAlignEdges(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.3, 0.4))
	ids := []string{"a", "b"}

	right := apply(m, Align(m, ids, EdgeRight))
	assert.InDelta(t, 0.35, right.Seats[0].X+right.Seats[0].W, 1e-12)
	assert.InDelta(t, 0.35, right.Seats[1].X+right.Seats[1].W, 1e-12)

	top := apply(m, Align(m, ids, EdgeTop))
	assert.Equal(t, 0.1, top.Seats[1].Y)

	bottom := apply(m, Align(m, ids, EdgeBottom))
	assert.InDelta(t, 0.4, bottom.Seats[0].Y, 1e-12)
}

func TestAlignNeedsTwoSeats(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.3, 0.4))

	assert.Empty(t, Align(m, []string{"a"}, EdgeLeft))
	assert.Empty(t, Align(m, []string{"a", "missing"}, EdgeLeft))
}

func TestCenterPatchesEverySeat(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.3, 0.1), seatAt("c", 0.2, 0.5))

	updates := Center(m, []string{"a", "b", "c"}, Horizontal)
	require.Len(t, updates, 3)

	out := apply(m, updates)
	for _, s := range out.Seats {
		cx, _ := s.Center()
		assert.InDelta(t, 0.225, cx, 1e-12, s.ID)
	}

	vert := apply(m, Center(m, []string{"a", "c"}, Vertical))
	_, cy := vert.Seats[0].Center()
	assert.InDelta(t, 0.325, cy, 1e-12)
}

func TestDistributeHorizontal(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("c", 0.9, 0.1), seatAt("b", 0.3, 0.1))

	out := apply(m, Distribute(m, []string{"a", "b", "c"}, Horizontal))

	a, _ := out.Seat("a")
	b, _ := out.Seat("b")
	c, _ := out.Seat("c")
	assert.Equal(t, 0.1, a.X)
	assert.Equal(t, 0.9, c.X)
	gap1 := b.X - (a.X + a.W)
	gap2 := c.X - (b.X + b.W)
	assert.InDelta(t, gap1, gap2, 1e-12)
	assert.InDelta(t, 0.5, b.X, 1e-12)
}

func TestDistributeAlreadyEvenIsNoop(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.5, 0.1), seatAt("c", 0.9, 0.1))

	assert.Empty(t, Distribute(m, []string{"a", "b", "c"}, Horizontal))
}

func TestDistributeBelowThreshold(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.4, 0.1))

	assert.Empty(t, Distribute(m, []string{"a", "b"}, Horizontal))
}

func TestDistributeOverlappingKeepsNegativeGap(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.1, 0.11), seatAt("c", 0.1, 0.14))

	out := apply(m, Distribute(m, []string{"a", "b", "c"}, Vertical))

	b, _ := out.Seat("b")
	assert.InDelta(t, 0.12, b.Y, 1e-12)
}

func TestBulkOperations(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.3, 0.1))
	ids := []string{"a", "b", "missing"}

	assert.Len(t, SetStatus(m, ids, document.StatusBlocked), 2)

	out := apply(m, SetSize(m, ids, 0.03, 0.04))
	assert.Equal(t, 0.03, out.Seats[1].W)
	assert.Equal(t, 0.04, out.Seats[1].H)

	out = apply(out, SetCategory(out, ids, "vip"))
	assert.Equal(t, "vip", out.Seats[0].CategoryID)
	out = apply(out, SetCategory(out, ids, ""))
	assert.Empty(t, out.Seats[0].CategoryID)

	assert.Empty(t, Bulk(m, ids, document.SeatPatch{}))
}

func TestNudge(t *testing.T) {
	m := mapOf(seatAt("a", 0.1, 0.1), seatAt("b", 0.995, 0.1))

	out := apply(m, Nudge(m, []string{"a", "b"}, NudgeStep(true), -NudgeStep(false)))

	assert.InDelta(t, 0.11, out.Seats[0].X, 1e-12)
	assert.InDelta(t, 0.099, out.Seats[0].Y, 1e-12)
	assert.InDelta(t, 1.005, out.Seats[1].X, 1e-12, "not clamped")
	assert.Empty(t, Nudge(m, []string{"a"}, 0, 0))
}

func TestDuplicate(t *testing.T) {
	src := seatAt("a", 0.1, 0.1)
	src.Status = document.StatusSold
	src.Row = document.Ptr(3)
	src.Metadata = map[string]any{"k": "v"}
	long := seatAt("ABCDEFGHIJKLMNOPQRST", 0.2, 0.2)
	m := mapOf(src, long)

	copies := Duplicate(m, []string{"a", "ABCDEFGHIJKLMNOPQRST"})
	require.Len(t, copies, 2)

	c := copies[0]
	assert.NotEqual(t, "a", c.ID)
	assert.Contains(t, c.ID, "seat_")
	assert.InDelta(t, 0.12, c.X, 1e-12)
	assert.Equal(t, 0.1, c.Y)
	assert.Equal(t, "a'", c.Label)
	assert.Equal(t, document.StatusAvailable, c.Status)
	assert.Equal(t, 3, *c.Row)
	assert.NotSame(t, src.Row, c.Row)

	c.Metadata["k"] = "changed"
	assert.Equal(t, "v", src.Metadata["k"])

	assert.Equal(t, "ABCDEFGHIJKLMNOPQRS'", copies[1].Label)
	assert.Len(t, []rune(copies[1].Label), document.MaxLabelLength)
}

func TestParsePattern(t *testing.T) {
	assert.Equal(t, []int{3, 3}, ParsePattern("3-3"))
	assert.Equal(t, []int{2, 4, 2}, ParsePattern(" 2 - 4 -2"))
	assert.Equal(t, []int{2}, ParsePattern("x-2-0"))
	assert.Empty(t, ParsePattern("  "))
}

func TestGridWithAisle(t *testing.T) {
	o := DefaultGridOptions()
	o.Rows = 2
	o.Groups = ParsePattern("1-1")
	o.StartX = 0.1
	o.SpacingX = 0.03
	o.AisleWidth = 0.04

	res := Grid(o)
	require.Len(t, res.Seats, 4)

	for row := 0; row < 2; row++ {
		left, right := res.Seats[row*2], res.Seats[row*2+1]
		assert.InDelta(t, 0.1, left.X, 1e-12)
		assert.InDelta(t, 0.17, right.X, 1e-12)
		assert.Equal(t, 0, *left.Column)
		assert.Equal(t, 1, *right.Column)
		assert.Equal(t, row+1, *left.Row)
	}
	assert.Equal(t, "A1", res.Seats[0].Label)
	assert.Equal(t, "B2", res.Seats[3].Label)
	assert.Equal(t, []string{"A", "B"}, res.ColumnLabels)
	assert.Equal(t, []int{0}, res.AisleAfterColumns)
}

func TestGridSkipsThirteen(t *testing.T) {
	o := DefaultGridOptions()
	o.Rows = 3
	o.Groups = []int{1}
	o.StartRowNumber = 12
	o.SkipThirteen = true

	res := Grid(o)
	require.Len(t, res.Seats, 3)

	assert.Equal(t, 12, *res.Seats[0].Row)
	assert.Equal(t, 14, *res.Seats[1].Row)
	assert.Equal(t, 15, *res.Seats[2].Row)
	assert.Equal(t, "A14", res.Seats[1].Label)
}

func TestGridCategoriesAndLabels(t *testing.T) {
	o := DefaultGridOptions()
	o.Rows = 2
	o.Groups = []int{2, 3}
	o.ColumnLabels = []string{"X", ""}
	o.FirstRowCategoryID = document.CategoryVIP

	res := Grid(o)
	require.Len(t, res.Seats, 10)

	assert.Equal(t, document.CategoryVIP, res.Seats[0].CategoryID)
	assert.Equal(t, document.CategoryStandard, res.Seats[5].CategoryID)
	assert.Equal(t, "X1", res.Seats[0].Label)
	assert.Equal(t, "21", res.Seats[1].Label)
	assert.Equal(t, "31", res.Seats[2].Label)
	assert.Equal(t, []int{1}, res.AisleAfterColumns)
	assert.Equal(t, []string{document.CategoryVIP, document.CategoryStandard}, o.UsedCategories())
	assert.Equal(t, 10, o.SeatCount())
}

func TestGridEmpty(t *testing.T) {
	o := DefaultGridOptions()
	o.Rows = 0
	assert.Empty(t, Grid(o).Seats)

	o = DefaultGridOptions()
	o.Groups = nil
	assert.Empty(t, Grid(o).Seats)
}

func TestGridNonPositiveGroups(t *testing.T) {
	o := DefaultGridOptions()
	o.Rows = 3
	o.Groups = []int{-5, 3}

	assert.NotPanics(t, func() {
		assert.Empty(t, Grid(o).Seats)
	})
	assert.Zero(t, o.SeatCount())

	o.Groups = []int{-5, 2}
	assert.NotPanics(t, func() {
		assert.Empty(t, Grid(o).Seats)
	})
}

func TestGridOptionsValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(o *GridOptions)
		field string
	}{
		{name: "defaults"},
		{name: "zero seat size", edit: func(o *GridOptions) { o.SeatW, o.SeatH = 0, 0 }},
		{name: "no rows", edit: func(o *GridOptions) { o.Rows = 0 }, field: "rows"},
		{name: "negative rows", edit: func(o *GridOptions) { o.Rows = -1 }, field: "rows"},
		{name: "no groups", edit: func(o *GridOptions) { o.Groups = nil }, field: "groups"},
		{name: "negative group", edit: func(o *GridOptions) { o.Groups = []int{-5, 3} }, field: "groups[0]"},
		{name: "zero group", edit: func(o *GridOptions) { o.Groups = []int{3, 0} }, field: "groups[1]"},
		{name: "seat too small", edit: func(o *GridOptions) { o.SeatW = 0.001 }, field: "seatW"},
		{name: "seat too large", edit: func(o *GridOptions) { o.SeatH = 0.6 }, field: "seatH"},
		{name: "start off canvas", edit: func(o *GridOptions) { o.StartX = 1.5 }, field: "startX"},
		{name: "negative spacing", edit: func(o *GridOptions) { o.SpacingY = -0.01 }, field: "spacingY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultGridOptions()
			if tt.edit != nil {
				tt.edit(&o)
			}
			err := o.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidGrid)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneBounds(t *testing.T) {
	m := testMap()

	r, ok := m.ZoneBounds("z1")
	require.True(t, ok)
	assert.InDelta(t, 0.09, r.X, 1e-12)
	assert.InDelta(t, 0.09, r.Y, 1e-12)
	assert.InDelta(t, 0.04, r.Width, 1e-12)
	assert.InDelta(t, 0.14, r.Height, 1e-12)

	_, ok = m.ZoneBounds("nobody")
	assert.False(t, ok)
}

func TestSortedCategories(t *testing.T) {
	m := &SeatMap{Categories: []Category{
		{ID: "none"},
		{ID: "two", Order: Ptr(2)},
		{ID: "one-a", Order: Ptr(1)},
		{ID: "one-b", Order: Ptr(1)},
	}}

	var ids []string
	for _, c := range m.SortedCategories() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"one-a", "one-b", "two", "none"}, ids)
	assert.Equal(t, "none", m.Categories[0].ID)
}

func TestRowGroups(t *testing.T) {
	m := &SeatMap{Seats: []Seat{
		{ID: "a", Row: Ptr(2)},
		{ID: "b", Row: Ptr(1)},
		{ID: "c"},
		{ID: "d", Row: Ptr(2)},
	}}

	groups := m.RowGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Row)
	assert.Len(t, groups[0].Seats, 1)
	assert.Equal(t, 2, groups[1].Row)
	assert.Equal(t, "a", groups[1].Seats[0].ID)
	assert.Equal(t, "d", groups[1].Seats[1].ID)
}

func TestDefaultCategoriesAreSorted(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 4)
	assert.Equal(t, "Standard", cats[0].Name)
	assert.Equal(t, "Accessible", cats[3].Name)
	assert.Equal(t, CategoryStandard, cats[0].ID)
	m := &SeatMap{Categories: cats}
	assert.Equal(t, cats, m.SortedCategories())
}

func TestCloneIsIndependent(t *testing.T) {
	m := testMap()
	m.Seats[0].Metadata = map[string]any{"tags": []any{"aisle"}}

	c := MustClone(m)
	c.Seats[0].Label = "changed"
	c.Seats[0].Metadata["tags"].([]any)[0] = "x"

	assert.Equal(t, "A1", m.Seats[0].Label)
	assert.Equal(t, "aisle", m.Seats[0].Metadata["tags"].([]any)[0])
}

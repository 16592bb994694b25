package maps

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seatmap/seatmap-editor/backend-go/internal/cache"
	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/editor"
	"github.com/seatmap/seatmap-editor/backend-go/internal/transform"
)

func newCachedService(t *testing.T) (*Service, *memRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	repo := newMemRepo()
	return NewService(repo, cache.New(rdb, time.Minute), 50), repo, mr
}

func exported(t *testing.T, m *document.SeatMap) []byte {
	t.Helper()
	data, err := document.Export(m)
	require.NoError(t, err)
	return data
}

func hallWithSeats(t *testing.T) []byte {
	t.Helper()
	m := document.NewEmptySeatMap("Hall")
	m.Seats = []document.Seat{
		{ID: "s1", Label: "A1", X: 0.1, Y: 0.1, W: 0.02, H: 0.02},
		{ID: "s2", Label: "A2", X: 0.2, Y: 0.1, W: 0.02, H: 0.02},
	}
	return exported(t, m)
}

func TestCreateAndGet(t *testing.T) {
	svc := NewService(newMemRepo(), nil, 50)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user_1", "")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Map", created.Name)
	assert.Zero(t, created.SeatCount)

	got, err := svc.Get(ctx, created.ID, "user_1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.Document.ID)

	_, err = svc.Get(ctx, created.ID, "user_2")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(ctx, "map_missing", "user_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImportAssignsFreshID(t *testing.T) {
	svc := NewService(newMemRepo(), nil, 50)

	first, err := svc.Import(context.Background(), "user_1", hallWithSeats(t))
	require.NoError(t, err)
	second, err := svc.Import(context.Background(), "user_1", hallWithSeats(t))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, first.SeatCount)
	assert.Equal(t, first.ID, first.Document.ID)
}

func TestImportRejectsInvalid(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil, 50)

	_, err := svc.Import(context.Background(), "user_1", []byte(`{"name":"x"}`))

	var verr *document.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "seats", verr.Issues[0].Path)
	assert.Empty(t, repo.maps)
}

func TestUpdateKeepsStoredID(t *testing.T) {
	svc := NewService(newMemRepo(), nil, 50)
	ctx := context.Background()
	created, err := svc.Create(ctx, "user_1", "Hall")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, "user_1", hallWithSeats(t))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.Document.ID)
	assert.Equal(t, 2, updated.SeatCount)

	_, err = svc.Update(ctx, created.ID, "user_2", hallWithSeats(t))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListNewestFirst(t *testing.T) {
	svc := NewService(newMemRepo(), nil, 50)
	ctx := context.Background()
	a, _ := svc.Create(ctx, "user_1", "A")
	b, _ := svc.Create(ctx, "user_1", "B")
	_, _ = svc.Create(ctx, "user_2", "C")

	list, err := svc.List(ctx, "user_1")
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestGenerateGrid(t *testing.T) {
	svc := NewService(newMemRepo(), nil, 50)
	ctx := context.Background()
	created, err := svc.Create(ctx, "user_1", "Hall")
	require.NoError(t, err)

	opts := transform.DefaultGridOptions()
	opts.Rows = 2
	opts.Groups = []int{2}
	detail, ids, err := svc.GenerateGrid(ctx, created.ID, "user_1", editor.GridRequest{GridOptions: opts})
	require.NoError(t, err)

	assert.Len(t, ids, 4)
	assert.Equal(t, 4, detail.SeatCount)
	assert.NotEmpty(t, detail.Document.Categories)

	got, err := svc.Get(ctx, created.ID, "user_1")
	require.NoError(t, err)
	assert.Len(t, got.Document.Seats, 4)
}

func TestGenerateGridOffCanvasNotSaved(t *testing.T) {
	svc := NewService(newMemRepo(), nil, 50)
	ctx := context.Background()
	created, err := svc.Create(ctx, "user_1", "Hall")
	require.NoError(t, err)

	opts := transform.DefaultGridOptions()
	opts.Rows = 1
	opts.Groups = []int{5}
	opts.StartX = 0.99
	_, _, err = svc.GenerateGrid(ctx, created.ID, "user_1", editor.GridRequest{GridOptions: opts})

	var verr *document.ValidationError
	require.ErrorAs(t, err, &verr)
	got, err := svc.Get(ctx, created.ID, "user_1")
	require.NoError(t, err)
	assert.Empty(t, got.Document.Seats)
}

func TestGenerateGridInvalidOptions(t *testing.T) {
	svc := NewService(newMemRepo(), nil, 50)
	ctx := context.Background()
	created, err := svc.Create(ctx, "user_1", "Hall")
	require.NoError(t, err)

	_, _, err = svc.GenerateGrid(ctx, created.ID, "user_1", editor.GridRequest{GridOptions: transform.GridOptions{
		Rows: 3, Groups: []int{-5, 3}, SeatW: 0.02, SeatH: 0.02,
	}})
	assert.ErrorIs(t, err, transform.ErrInvalidGrid)
}

func TestPublishedReadThrough(t *testing.T) {
	svc, repo, mr := newCachedService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, "user_1", "Hall")
	require.NoError(t, err)

	_, err = svc.Published(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.SetPublished(ctx, created.ID, "user_1", true))

	doc, err := svc.LoadPublished(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hall", doc.Name)
	assert.True(t, mr.Exists("seatmap:published:"+created.ID))

	calls := repo.published
	_, err = svc.Published(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, calls, repo.published, "second read is served from cache")

	_, err = svc.Update(ctx, created.ID, "user_1", hallWithSeats(t))
	require.NoError(t, err)
	assert.False(t, mr.Exists("seatmap:published:"+created.ID))

	doc, err = svc.LoadPublished(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, doc.Seats, 2)
}

func TestDeleteInvalidatesCache(t *testing.T) {
	svc, _, mr := newCachedService(t)
	ctx := context.Background()
	created, _ := svc.Create(ctx, "user_1", "Hall")
	require.NoError(t, svc.SetPublished(ctx, created.ID, "user_1", true))
	_, err := svc.Published(ctx, created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, "user_1"))

	assert.False(t, mr.Exists("seatmap:published:"+created.ID))
	_, err = svc.Published(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublishedSurvivesCacheOutage(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	svc := NewService(newMemRepo(), cache.New(rdb, time.Minute), 50)
	ctx := context.Background()
	created, _ := svc.Create(ctx, "user_1", "Hall")
	require.NoError(t, svc.SetPublished(ctx, created.ID, "user_1", true))
	mr.Close()

	doc, err := svc.LoadPublished(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, doc.ID)
}

func TestExport(t *testing.T) {
	svc := NewService(newMemRepo(), nil, 50)
	ctx := context.Background()
	created, _ := svc.Import(ctx, "user_1", hallWithSeats(t))

	data, name, err := svc.Export(ctx, created.ID, "user_1")
	require.NoError(t, err)

	assert.Equal(t, "Hall", name)
	back, err := document.Import(data)
	require.NoError(t, err)
	assert.Len(t, back.Seats, 2)
}

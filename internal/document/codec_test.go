package document

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuePaths(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	paths := make([]string, len(verr.Issues))
	for i, is := range verr.Issues {
		paths[i] = is.Path
	}
	return paths
}

func TestExportImportRoundTrip(t *testing.T) {
	m := testMap()
	m.Seats[0].Row = Ptr(1)
	m.Seats[0].Metadata = map[string]any{"note": "aisle"}
	m.Settings = &Settings{AllowMultiSelect: true, ShowLabels: true, Theme: ThemeDark}

	data, err := Export(m)
	require.NoError(t, err)

	back, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	again, err := Export(back)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestImportRequiresSeats(t *testing.T) {
	_, err := Import([]byte(`{"id":"m","version":"1.0","name":"x","background":{"url":"","width":0,"height":0}}`))
	assert.Equal(t, []string{"seats"}, issuePaths(t, err))

	_, err = Import([]byte(`{"id":"m","version":"1.0","name":"x","seats":null}`))
	assert.Equal(t, []string{"seats"}, issuePaths(t, err))
}

func TestImportRejectsOutOfRangeSeats(t *testing.T) {
	m := testMap()
	m.Seats[1].X = 1.2
	m.Seats[2].W = 0.001
	m.Seats[0].Label = ""
	data, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Import(data)

	assert.ElementsMatch(t, []string{"seats[0].label", "seats[1].x", "seats[2].w"}, issuePaths(t, err))
}

func TestImportRejectsWrongVersion(t *testing.T) {
	m := testMap()
	m.Version = "2.0"
	data, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Import(data)

	assert.Equal(t, []string{"version"}, issuePaths(t, err))
}

func TestImportRejectsLongLabelAndDuplicates(t *testing.T) {
	m := testMap()
	m.Seats[0].Label = "ABCDEFGHIJKLMNOPQRSTU"
	m.Seats[2].ID = "s2"
	data, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Import(data)

	assert.ElementsMatch(t, []string{"seats[0].label", "seats[2].id"}, issuePaths(t, err))
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	_, err := Import([]byte(`{"seats": [`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Error())

	_, err = Import([]byte(`{"id":"m","version":"1.0","name":"x","seats":[{"id":"a","x":"left"}]}`))
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Contains(t, verr.Issues[0].Path, "x")
}

func TestExportNilSeatsAsEmptyArray(t *testing.T) {
	m := testMap()
	m.Seats = nil

	data, err := Export(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seats": []`)
	assert.Nil(t, m.Seats)
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, err = s.Get(ctx, KeyBookings)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, PutJSON(ctx, s, KeyProfileDoc, doc{Name: "John", Price: 12.5}))

	var got doc
	ok, err := GetJSON(ctx, s, KeyProfileDoc, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, doc{Name: "John", Price: 12.5}, got)

	raw, err := os.ReadFile(filepath.Join(dir, "driver-profile.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"name\": \"John\"")
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Put(ctx, KeyTrips, []byte(`[]`)))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "trips.json", entries[0].Name())
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.Put(context.Background(), "../escape", []byte(`{}`)))
	_, err = s.Get(context.Background(), "a/b")
	assert.Error(t, err)
}

func TestGetJSONTreatsNullAsAbsent(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, KeyUser, []byte("null")))

	var got doc
	ok, err := GetJSON(ctx, s, KeyUser, &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetJSONReportsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, KeyBookings, []byte("[{")))

	var got []doc
	_, err = GetJSON(ctx, s, KeyBookings, &got)
	assert.ErrorContains(t, err, "decode bookings")
}

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"luxride/internal/domain"
	router "luxride/internal/http"
	"luxride/internal/repositories"
	"luxride/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverIDFunc(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	gen := func(time.Time) string { return "generated" }

	assert.Equal(t, "generated", driverIDFunc("", gen)(now))
	assert.Equal(t, "DR-9", driverIDFunc("DR-9", gen)(now))
}

func TestCORSOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, corsOrigins(router.ModeFull, nil))
	assert.Nil(t, corsOrigins(router.ModeProfile, nil))
	assert.Equal(t, []string{"http://a.test"}, corsOrigins(router.ModeFull, []string{"http://a.test"}))
	assert.Equal(t, []string{"http://a.test"}, corsOrigins(router.ModeProfile, []string{"http://a.test"}))
}

func TestSeedCommand(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("DATA_DIR", dataDir)

	file := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"id":"b1","pickup":"A","destination":"B","status":"completed","price":12},{"pickup":"C","destination":"D"}]`), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"seed", "--file", file})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	store, err := storage.NewFileStore(dataDir)
	require.NoError(t, err)
	items, err := repositories.NewBookingRepository(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.StatusCompleted, items[0].Status)
	assert.NotEmpty(t, items[1].ID)
	assert.Equal(t, domain.StatusRequested, items[1].Status)
}

func TestSeedCommandRequiresInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"seed"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

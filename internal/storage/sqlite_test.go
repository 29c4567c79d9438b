package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriMap/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "rorimap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSaveRouteDisplayedUpserts(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveRouteDisplayed("ore", true))
	require.NoError(t, db.SaveRouteDisplayed("wood", true))
	require.NoError(t, db.SaveRouteDisplayed("ore", false))

	routes, err := db.DisplayedRoutes()
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"ore": false, "wood": true}, routes)
}

func TestRecordImport(t *testing.T) {
	db := openTestDB(t)

	first := models.ImportBatch{
		ID:         "b1",
		Source:     models.SourcePaste,
		Found:      []string{"m2", "m1"},
		Routes:     map[string]bool{"ore": true},
		ImportedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	second := models.ImportBatch{
		ID:         "b2",
		Source:     models.SourceBookmarklet,
		Found:      []string{"m1", "m3"},
		ImportedAt: first.ImportedAt.Add(time.Hour),
	}
	require.NoError(t, db.RecordImport(first))
	require.NoError(t, db.RecordImport(second))

	found, err := db.FoundMarkers()
	require.NoError(t, err)
	require.Equal(t, []string{"m1", "m2", "m3"}, found)

	routes, err := db.DisplayedRoutes()
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"ore": true}, routes)

	history, err := db.Imports(10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "b2", history[0].ID)
	require.Equal(t, models.SourceBookmarklet, history[0].Source)
	require.Equal(t, 2, history[0].MarkerCount)
	require.Equal(t, 1, history[1].RouteCount)
	require.True(t, history[1].ImportedAt.Equal(first.ImportedAt))
}

func TestRecordImportDuplicateBatchRollsBack(t *testing.T) {
	db := openTestDB(t)
	batch := models.ImportBatch{ID: "dup", Source: models.SourcePaste, Found: []string{"a"}, ImportedAt: time.Now()}

	require.NoError(t, db.RecordImport(batch))
	batch.Found = []string{"b"}
	require.Error(t, db.RecordImport(batch))

	found, err := db.FoundMarkers()
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, found)
}

func TestInMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.SaveRouteDisplayed("ore", true))
	routes, err := db.DisplayedRoutes()
	require.NoError(t, err)
	require.True(t, routes["ore"])
}

func TestOpenAppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rorimap.db")

	db, err := Open(path)
	require.NoError(t, err)
	version, err := db.SchemaVersion()
	require.NoError(t, err)
	require.Equal(t, uint(1), version)
	require.NoError(t, db.SaveRouteDisplayed("ore", true))
	require.NoError(t, db.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	version, err = reopened.SchemaVersion()
	require.NoError(t, err)
	require.Equal(t, uint(1), version)

	routes, err := reopened.DisplayedRoutes()
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"ore": true}, routes)
}

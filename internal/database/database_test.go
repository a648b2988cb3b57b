package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ladrillo/server/internal/currency"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	db, err := Open(filepath.Join(t.TempDir(), "snapshots.db"), logger)
	require.NoError(t, err)
	return db
}

func TestLatestSnapshotEmpty(t *testing.T) {
	db := testDB(t)

	snap, err := db.LatestSnapshot()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	db := testDB(t)

	older, err := currency.NewSnapshot(37900, 995, 945, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	newer, err := currency.NewSnapshot(38000, 1000, 950, time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, db.SaveSnapshot(older))
	require.NoError(t, db.SaveSnapshot(newer))

	latest, err := db.LatestSnapshot()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 38000.0, latest.UFCLP)
	assert.True(t, latest.FetchedAt.Equal(newer.FetchedAt))
}

func TestSnapshotHistory(t *testing.T) {
	db := testDB(t)

	for day := 1; day <= 5; day++ {
		snap, err := currency.NewSnapshot(38000+float64(day), 1000, 950,
			time.Date(2026, 8, day, 9, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, db.SaveSnapshot(snap))
	}

	history, err := db.SnapshotHistory(3)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Newest first.
	assert.Equal(t, 38005.0, history[0].UFCLP)
	assert.Equal(t, 38003.0, history[2].UFCLP)
}

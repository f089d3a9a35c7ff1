package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ckd-food-advisor/internal/clinical"
	"ckd-food-advisor/internal/database"
)

func newTestStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewStore(db.SQL)
	s.now = func() time.Time { return now }
	return s
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, now)

	records := []AnalysisMetric{
		{FoodID: 28, FoodName: "Ramyeon", Status: clinical.Limit, PrimaryReason: clinical.AxisSodium, LatencyMS: 4, Timestamp: now.Add(-time.Hour)},
		{FoodID: 1, FoodName: "White Rice", Status: clinical.Safe, LatencyMS: 2, Timestamp: now.Add(-2 * time.Hour)},
		{FoodID: 1, FoodName: "White Rice", Status: clinical.Caution, PrimaryReason: clinical.AxisGlycemic, LatencyMS: 3, Timestamp: now.Add(-26 * time.Hour)},
		{FoodID: 5, FoodName: "Potato", Status: clinical.Limit, PrimaryReason: clinical.AxisPotassium, LatencyMS: 1, Timestamp: now.AddDate(0, 0, -45)},
		{FoodID: 7, FoodName: "Cucumber", Status: clinical.Safe},
	}
	for _, r := range records {
		require.NoError(t, s.Record(ctx, r))
	}

	t.Run("GetDailyVerdicts", func(t *testing.T) {
		days, err := s.GetDailyVerdicts(ctx, 7)
		require.NoError(t, err)
		require.Len(t, days, 2)

		assert.Equal(t, "2026-05-20", days[0].Date)
		assert.Equal(t, 2, days[0].Safe)
		assert.Equal(t, 0, days[0].Caution)
		assert.Equal(t, 1, days[0].Limit)
		assert.Equal(t, 3, days[0].Total)
		assert.InDelta(t, 2.0, days[0].AvgLatencyMS, 0.001)

		assert.Equal(t, "2026-05-19", days[1].Date)
		assert.Equal(t, 1, days[1].Caution)
	})

	t.Run("Cleanup", func(t *testing.T) {
		removed, err := s.Cleanup(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		removed, err = s.Cleanup(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, int64(0), removed)

		days, err := s.GetDailyVerdicts(ctx, 365)
		require.NoError(t, err)
		assert.Len(t, days, 2)
	})
}

func TestStoreErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewStore(db)
	dbErr := errors.New("database is locked")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analysis_metrics")).WillReturnError(dbErr)
	err = s.Record(context.Background(), AnalysisMetric{FoodID: 1, Status: clinical.Safe})
	assert.ErrorIs(t, err, dbErr)

	mock.ExpectQuery(regexp.QuoteMeta("FROM analysis_metrics\nWHERE timestamp >= ?")).WillReturnError(dbErr)
	_, err = s.GetDailyVerdicts(context.Background(), 7)
	assert.ErrorIs(t, err, dbErr)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM analysis_metrics")).WillReturnError(dbErr)
	_, err = s.Cleanup(context.Background(), 30)
	assert.ErrorIs(t, err, dbErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewHealth(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "advisor.db")
	require.NoError(t, os.WriteFile(dbPath, make([]byte, 2048), 0644))
	require.NoError(t, os.WriteFile(dbPath+"-wal", make([]byte, 1024), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.log"), make([]byte, 4096), 0644))

	catalog := CatalogHealth{Foods: 40, Fingerprint: "40-abc"}

	t.Run("Ok", func(t *testing.T) {
		h := NewHealth(catalog, &SchemaHealth{Version: 2}, CacheHealth{Enabled: true, Hits: 3, Misses: 1}, dbPath)
		assert.Equal(t, "ok", h.Status)
		assert.Equal(t, catalog, h.Catalog)
		assert.Equal(t, uint(2), h.Schema.Version)
		assert.InDelta(t, 0.75, h.Cache.HitRate, 0.0001)
		assert.Equal(t, "3.0 KB", h.Process.DatabaseSize)
		assert.Greater(t, h.Process.Goroutines, 0)
	})

	t.Run("DirtySchemaIsDegraded", func(t *testing.T) {
		h := NewHealth(catalog, &SchemaHealth{Version: 2, Dirty: true}, CacheHealth{}, dbPath)
		assert.Equal(t, "degraded", h.Status)
	})

	t.Run("UnreadableSchemaIsDegraded", func(t *testing.T) {
		h := NewHealth(catalog, &SchemaHealth{Error: "no migration"}, CacheHealth{}, dbPath)
		assert.Equal(t, "degraded", h.Status)
	})

	t.Run("NoDatabase", func(t *testing.T) {
		h := NewHealth(catalog, nil, CacheHealth{}, "")
		assert.Equal(t, "ok", h.Status)
		assert.Nil(t, h.Schema)
		assert.Empty(t, h.Process.DatabaseSize)
		assert.Zero(t, h.Cache.HitRate)
	})
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 KB", formatBytes(1536))
	assert.Equal(t, "3.0 MB", formatBytes(3*1024*1024))
}

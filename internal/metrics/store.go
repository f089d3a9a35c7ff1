package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ckd-food-advisor/internal/clinical"
	"ckd-food-advisor/internal/database"
	metricsdb "ckd-food-advisor/internal/metrics/metrics_db"
)

// AnalysisMetric records metadata for a single food analysis.
type AnalysisMetric struct {
	FoodID        int
	FoodName      string
	Status        clinical.Verdict
	PrimaryReason clinical.Axis
	LatencyMS     int64
	Timestamp     time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
	now     func() time.Time
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		now:     time.Now,
	}
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m AnalysisMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}

	err := s.queries.InsertAnalysisMetric(ctx, metricsdb.InsertAnalysisMetricParams{
		FoodID:        int64(m.FoodID),
		FoodName:      m.FoodName,
		Status:        m.Status.String(),
		PrimaryReason: string(m.PrimaryReason),
		LatencyMs:     m.LatencyMS,
		Timestamp:     database.FormatTime(ts),
	})
	if err != nil {
		return fmt.Errorf("failed to record analysis metric: %w", err)
	}
	return nil
}

// DailyVerdicts holds verdict counts for a single day.
type DailyVerdicts struct {
	Date         string  `json:"date"`
	Safe         int     `json:"safe"`
	Caution      int     `json:"caution"`
	Limit        int     `json:"limit"`
	Total        int     `json:"total"`
	AvgLatencyMS float64 `json:"avgLatencyMs"`
}

// GetDailyVerdicts summarizes analyses of the last N days, newest day first.
func (s *Store) GetDailyVerdicts(ctx context.Context, days int) ([]DailyVerdicts, error) {
	since := database.FormatTime(s.now().AddDate(0, 0, -days))
	rows, err := s.queries.GetDailyVerdicts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily verdicts: %w", err)
	}

	results := make([]DailyVerdicts, 0, len(rows))
	for _, r := range rows {
		results = append(results, DailyVerdicts{
			Date:         r.Day,
			Safe:         int(r.Safe),
			Caution:      int(r.Caution),
			Limit:        int(r.Limit),
			Total:        int(r.Total),
			AvgLatencyMS: r.AvgLatencyMs,
		})
	}
	return results, nil
}

// Cleanup removes records older than the given number of days.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := database.FormatTime(s.now().AddDate(0, 0, -olderThanDays))
	n, err := s.queries.DeleteAnalysisMetricsBefore(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up analysis metrics: %w", err)
	}
	return n, nil
}

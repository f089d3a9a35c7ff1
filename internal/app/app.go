package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ckd-food-advisor/internal/cache"
	"ckd-food-advisor/internal/clinical"
	"ckd-food-advisor/internal/database"
	"ckd-food-advisor/internal/food"
	"ckd-food-advisor/internal/metrics"
	"ckd-food-advisor/internal/profile"
)

// ProfileStore persists saved profiles.
type ProfileStore interface {
	Create(ctx context.Context, in profile.CreateInput) (*profile.SavedProfile, error)
	List(ctx context.Context) ([]profile.SavedProfile, error)
	ListChronological(ctx context.Context, name string) ([]profile.SavedProfile, error)
	Get(ctx context.Context, id int64) (*profile.SavedProfile, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// MetricsStore persists analysis metrics.
type MetricsStore interface {
	Record(ctx context.Context, m metrics.AnalysisMetric) error
	GetDailyVerdicts(ctx context.Context, days int) ([]metrics.DailyVerdicts, error)
	Cleanup(ctx context.Context, olderThanDays int) (int64, error)
}

// App holds the application's dependencies.
type App struct {
	catalog  *food.Catalog
	profiles ProfileStore
	metrics  MetricsStore
	results  cache.ResultCache
	logger   *zap.Logger
	now      func() time.Time

	// dbPath is reported on by Health; empty means no schema check.
	dbPath string
}

// Option customizes an App.
type Option func(*App)

// WithDatabasePath lets Health report the schema version and file size of
// the SQLite database at path.
func WithDatabasePath(path string) Option {
	return func(a *App) { a.dbPath = path }
}

// NewApp creates and initializes a new App instance. A nil result cache
// disables caching.
func NewApp(
	catalog *food.Catalog,
	profiles ProfileStore,
	metricsStore MetricsStore,
	results cache.ResultCache,
	logger *zap.Logger,
	opts ...Option,
) *App {
	if results == nil {
		results = cache.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		catalog:  catalog,
		profiles: profiles,
		metrics:  metricsStore,
		results:  results,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze validates the profile, scores the food and records the outcome.
func (a *App) Analyze(ctx context.Context, foodID int, in clinical.ProfileInput) (*clinical.AnalysisResult, error) {
	start := a.now()

	if err := in.Validate(); err != nil {
		var verr *clinical.ValidationError
		if errors.As(err, &verr) {
			return nil, verr.WithPrefix("profile")
		}
		return nil, err
	}
	p := in.Profile()

	item, ok := a.catalog.GetByID(foodID)
	if !ok {
		return nil, &clinical.NotFoundError{Resource: "food", ID: int64(foodID), Message: "Food not found for analysis"}
	}

	if cached, hit, err := a.results.Get(ctx, foodID, p); err != nil {
		a.logger.Warn("analysis cache read failed", zap.Int("food_id", foodID), zap.Error(err))
	} else if hit {
		a.record(ctx, item, cached, start, true)
		return cached, nil
	}

	res := clinical.Analyze(p, item, a.catalog.All())

	if err := a.results.Set(ctx, foodID, p, res); err != nil {
		a.logger.Warn("analysis cache write failed", zap.Int("food_id", foodID), zap.Error(err))
	}
	a.record(ctx, item, &res, start, false)
	return &res, nil
}

func (a *App) record(ctx context.Context, item food.FoodItem, res *clinical.AnalysisResult, start time.Time, cached bool) {
	latency := a.now().Sub(start)
	a.logger.Debug("food analyzed",
		zap.Int("food_id", item.ID),
		zap.String("status", res.Status.String()),
		zap.String("primary_reason", string(res.PrimaryReason)),
		zap.Bool("cached", cached),
		zap.Duration("latency", latency),
	)

	if a.metrics == nil {
		return
	}
	err := a.metrics.Record(ctx, metrics.AnalysisMetric{
		FoodID:        item.ID,
		FoodName:      item.FoodName,
		Status:        res.Status,
		PrimaryReason: res.PrimaryReason,
		LatencyMS:     latency.Milliseconds(),
	})
	if err != nil {
		a.logger.Warn("failed to record analysis metric", zap.Int("food_id", item.ID), zap.Error(err))
	}
}

// SearchFoods returns catalog foods whose name or category contains query.
func (a *App) SearchFoods(_ context.Context, query string) []food.FoodItem {
	return a.catalog.Search(query)
}

// GetFood returns a single catalog food.
func (a *App) GetFood(_ context.Context, id int) (*food.FoodItem, error) {
	item, ok := a.catalog.GetByID(id)
	if !ok {
		return nil, &clinical.NotFoundError{Resource: "food", ID: int64(id), Message: "Food not found"}
	}
	return &item, nil
}

// SaveProfile validates and stores a named profile snapshot.
func (a *App) SaveProfile(ctx context.Context, in profile.CreateInput) (*profile.SavedProfile, error) {
	if err := clinical.ValidateStruct(in); err != nil {
		return nil, err
	}
	p, err := a.profiles.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return p, nil
}

// ListProfiles returns saved profiles, newest first.
func (a *App) ListProfiles(ctx context.Context) ([]profile.SavedProfile, error) {
	list, err := a.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return list, nil
}

// GetProfile returns one saved profile.
func (a *App) GetProfile(ctx context.Context, id int64) (*profile.SavedProfile, error) {
	p, err := a.profiles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, &clinical.NotFoundError{Resource: "profile", ID: id, Message: "Profile not found"}
	}
	return p, nil
}

// DeleteProfile removes a saved profile.
func (a *App) DeleteProfile(ctx context.Context, id int64) error {
	ok, err := a.profiles.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if !ok {
		return &clinical.NotFoundError{Resource: "profile", ID: id, Message: "Profile not found"}
	}
	return nil
}

// ProfileTrends returns the lab history of saved profiles, oldest first.
// An empty name returns every profile.
func (a *App) ProfileTrends(ctx context.Context, name string) ([]profile.TrendPoint, error) {
	history, err := a.profiles.ListChronological(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile history: %w", err)
	}
	return profile.Trend(history), nil
}

// DailyVerdicts summarizes recorded analyses over the last days.
func (a *App) DailyVerdicts(ctx context.Context, days int) ([]metrics.DailyVerdicts, error) {
	if err := checkDays(days); err != nil {
		return nil, err
	}
	if a.metrics == nil {
		return []metrics.DailyVerdicts{}, nil
	}
	out, err := a.metrics.GetDailyVerdicts(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily verdicts: %w", err)
	}
	return out, nil
}

// CleanupMetrics deletes analysis metrics older than days.
func (a *App) CleanupMetrics(ctx context.Context, days int) (int64, error) {
	if err := checkDays(days); err != nil {
		return 0, err
	}
	if a.metrics == nil {
		return 0, nil
	}
	n, err := a.metrics.Cleanup(ctx, days)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up metrics: %w", err)
	}
	return n, nil
}

// Health reports the catalog, schema, cache and process state.
func (a *App) Health(_ context.Context) metrics.Health {
	var schema *metrics.SchemaHealth
	if a.dbPath != "" {
		schema = &metrics.SchemaHealth{}
		version, dirty, err := database.SchemaVersion(a.dbPath)
		if err != nil {
			a.logger.Warn("failed to read schema version", zap.String("path", a.dbPath), zap.Error(err))
			schema.Error = err.Error()
		} else {
			schema.Version = version
			schema.Dirty = dirty
		}
	}

	stats := a.results.Stats()
	return metrics.NewHealth(
		metrics.CatalogHealth{Foods: a.catalog.Len(), Fingerprint: a.catalog.Fingerprint()},
		schema,
		metrics.CacheHealth{Enabled: stats.Enabled, Hits: stats.Hits, Misses: stats.Misses},
		a.dbPath,
	)
}

func checkDays(days int) error {
	if days < 1 || days > 3650 {
		return &clinical.ValidationError{Field: "days", Message: "Must be between 1 and 3650"}
	}
	return nil
}

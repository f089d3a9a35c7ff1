package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ckd-food-advisor/internal/database"
	profiledb "ckd-food-advisor/internal/profile/profile_db"
)

// Repository handles persistence of saved profiles.
type Repository struct {
	queries *profiledb.Queries
	now     func() time.Time
}

// NewRepository creates a new saved profile repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: profiledb.New(d),
		now:     time.Now,
	}
}

// Create stores a new profile and returns it with its assigned id.
// Ids come from the table's AUTOINCREMENT sequence and are never reused.
func (r *Repository) Create(ctx context.Context, in CreateInput) (*SavedProfile, error) {
	p := &SavedProfile{
		Name:           in.Name,
		HbA1c:          in.HbA1c,
		EGFR:           in.EGFR,
		SerumPotassium: in.SerumPotassium,
		CreatedAt:      r.now().UTC().Truncate(time.Millisecond),
	}
	if in.CKDStage != nil {
		p.CKDStage = *in.CKDStage
	}
	if in.HasDM != nil {
		p.HasDM = *in.HasDM
	}

	res, err := r.queries.CreateSavedProfile(ctx, profiledb.CreateSavedProfileParams{
		Name:           p.Name,
		CkdStage:       int64(p.CKDStage),
		HasDm:          boolToInt(p.HasDM),
		Hba1c:          nullable(p.HbA1c),
		Egfr:           nullable(p.EGFR),
		SerumPotassium: nullable(p.SerumPotassium),
		CreatedAt:      database.FormatTime(p.CreatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert saved profile: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read saved profile id: %w", err)
	}
	p.ID = id
	return p, nil
}

// List returns all profiles, newest first.
func (r *Repository) List(ctx context.Context) ([]SavedProfile, error) {
	rows, err := r.queries.ListSavedProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved profiles: %w", err)
	}
	return fromRows(rows)
}

// ListChronological returns profiles oldest first, optionally only those
// saved under name.
func (r *Repository) ListChronological(ctx context.Context, name string) ([]SavedProfile, error) {
	var (
		rows []profiledb.SavedProfile
		err  error
	)
	if name == "" {
		rows, err = r.queries.ListSavedProfilesChronological(ctx)
	} else {
		rows, err = r.queries.ListSavedProfilesByName(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list saved profile history: %w", err)
	}
	return fromRows(rows)
}

// Get retrieves a profile by id. It returns nil when no profile exists.
func (r *Repository) Get(ctx context.Context, id int64) (*SavedProfile, error) {
	row, err := r.queries.GetSavedProfile(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get saved profile: %w", err)
	}

	p, err := fromRow(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved profile: %w", err)
	}
	return p, nil
}

// Delete removes a profile and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteSavedProfile(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved profile: %w", err)
	}
	return n > 0, nil
}

func fromRow(row profiledb.SavedProfile) (*SavedProfile, error) {
	createdAt, err := database.ParseTime(row.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &SavedProfile{
		ID:             row.ID,
		Name:           row.Name,
		CKDStage:       int(row.CkdStage),
		HasDM:          row.HasDm != 0,
		HbA1c:          floatPtr(row.Hba1c),
		EGFR:           floatPtr(row.Egfr),
		SerumPotassium: floatPtr(row.SerumPotassium),
		CreatedAt:      createdAt,
	}, nil
}

func fromRows(rows []profiledb.SavedProfile) ([]SavedProfile, error) {
	profiles := make([]SavedProfile, 0, len(rows))
	for _, row := range rows {
		p, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to map saved profile %d: %w", row.ID, err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func nullable(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

package profile

import (
	"time"
)

// SavedProfile is a named snapshot of a patient's lab values.
type SavedProfile struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	CKDStage       int       `json:"ckdStage"`
	HasDM          bool      `json:"hasDm"`
	HbA1c          *float64  `json:"hba1c"`
	EGFR           *float64  `json:"eGFR"`
	SerumPotassium *float64  `json:"serumPotassium"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateInput is the payload for saving a profile. Lab values may be null.
type CreateInput struct {
	Name           string   `json:"name" validate:"required,min=1,max=100"`
	CKDStage       *int     `json:"ckdStage" validate:"required,min=1,max=5"`
	HasDM          *bool    `json:"hasDm" validate:"required"`
	HbA1c          *float64 `json:"hba1c"`
	EGFR           *float64 `json:"eGFR"`
	SerumPotassium *float64 `json:"serumPotassium"`
}

// TrendPoint is one observation in a profile's lab history.
type TrendPoint struct {
	ProfileID      int64     `json:"profileId"`
	Name           string    `json:"name"`
	Date           time.Time `json:"date"`
	CKDStage       int       `json:"ckdStage"`
	HbA1c          *float64  `json:"hba1c"`
	EGFR           *float64  `json:"eGFR"`
	SerumPotassium *float64  `json:"serumPotassium"`
}

// Trend converts saved profiles, already in chronological order, into
// chart points.
func Trend(profiles []SavedProfile) []TrendPoint {
	points := make([]TrendPoint, 0, len(profiles))
	for _, p := range profiles {
		points = append(points, TrendPoint{
			ProfileID:      p.ID,
			Name:           p.Name,
			Date:           p.CreatedAt,
			CKDStage:       p.CKDStage,
			HbA1c:          p.HbA1c,
			EGFR:           p.EGFR,
			SerumPotassium: p.SerumPotassium,
		})
	}
	return points
}

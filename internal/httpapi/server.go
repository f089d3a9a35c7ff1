// Package httpapi exposes the advisor over a JSON REST API.
package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ckd-food-advisor/internal/clinical"
	"ckd-food-advisor/internal/food"
	"ckd-food-advisor/internal/metrics"
	"ckd-food-advisor/internal/profile"
)

// Service is the application surface served over HTTP.
type Service interface {
	Analyze(ctx context.Context, foodID int, in clinical.ProfileInput) (*clinical.AnalysisResult, error)
	SearchFoods(ctx context.Context, query string) []food.FoodItem
	GetFood(ctx context.Context, id int) (*food.FoodItem, error)
	SaveProfile(ctx context.Context, in profile.CreateInput) (*profile.SavedProfile, error)
	ListProfiles(ctx context.Context) ([]profile.SavedProfile, error)
	GetProfile(ctx context.Context, id int64) (*profile.SavedProfile, error)
	DeleteProfile(ctx context.Context, id int64) error
	ProfileTrends(ctx context.Context, name string) ([]profile.TrendPoint, error)
	DailyVerdicts(ctx context.Context, days int) ([]metrics.DailyVerdicts, error)
	Health(ctx context.Context) metrics.Health
}

// Options configure the router.
type Options struct {
	Logger *zap.Logger
	// JWTSecret, when set, requires a bearer token on /api/profiles.
	JWTSecret string
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(svc Service, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{svc: svc, logger: logger}

	r := gin.New()
	r.Use(requestID(), accessLog(logger), recovery(logger), cors())

	r.GET("/health", h.health)

	api := r.Group("/api")
	api.GET("/foods", h.searchFoods)
	api.GET("/foods/:id", h.getFood)
	api.POST("/analyze", h.analyze)
	api.GET("/metrics/daily", h.dailyVerdicts)

	profiles := api.Group("/profiles")
	if opts.JWTSecret != "" {
		profiles.Use(requireJWT(opts.JWTSecret))
	}
	profiles.GET("", h.listProfiles)
	profiles.POST("", h.createProfile)
	profiles.GET("/trends", h.profileTrends)
	profiles.GET("/:id", h.getProfile)
	profiles.DELETE("/:id", h.deleteProfile)

	return r
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"

	"ckd-food-advisor/internal/clinical"
)

// DefaultPrefix namespaces analysis entries in Redis.
const DefaultPrefix = "ckd:analysis:"

// ResultCache stores analysis results keyed by food and scored profile fields.
type ResultCache interface {
	Get(ctx context.Context, foodID int, p clinical.PatientProfile) (*clinical.AnalysisResult, bool, error)
	Set(ctx context.Context, foodID int, p clinical.PatientProfile, res clinical.AnalysisResult) error
	Stats() Stats
}

// Stats reports cache usage since startup.
type Stats struct {
	Enabled bool
	Hits    int64
	Misses  int64
}

// Namespace returns the key prefix for entries computed against a catalog.
// Results name foods and suggest other catalog entries, so a catalog with a
// different fingerprint must not read them.
func Namespace(prefix, catalogFingerprint string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if catalogFingerprint == "" {
		return prefix
	}
	return prefix + catalogFingerprint + ":"
}

// Key builds the cache key. Only fields that change the verdict or the
// suggestion lists take part, so demographics and eGFR share an entry.
func Key(prefix string, foodID int, p clinical.PatientProfile) string {
	return fmt.Sprintf("%sfood=%d:stage=%d:dm=%t:hba1c=%s:k=%s",
		prefix, foodID, p.CKDStage, p.HasDM, optional(p.HbA1c), optional(p.SerumPotassium))
}

func optional(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

// Redis is a ResultCache backed by go-redis.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	prefix string

	hits   int64
	misses int64
}

// Option customizes a Redis cache.
type Option func(*Redis)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Redis) { c.prefix = prefix }
}

// NewRedis creates a Redis-backed result cache with the given TTL.
func NewRedis(client *redis.Client, ttl time.Duration, opts ...Option) *Redis {
	c := &Redis{client: client, ttl: ttl, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached result. A miss is (nil, false, nil).
func (c *Redis) Get(ctx context.Context, foodID int, p clinical.PatientProfile) (*clinical.AnalysisResult, bool, error) {
	val, err := c.client.Get(ctx, Key(c.prefix, foodID, p)).Bytes()
	if errors.Is(err, redis.Nil) {
		atomic.AddInt64(&c.misses, 1)
		return nil, false, nil
	}
	if err != nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, false, fmt.Errorf("failed to read cached analysis: %w", err)
	}

	var res clinical.AnalysisResult
	if err := json.Unmarshal(val, &res); err != nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, false, fmt.Errorf("failed to decode cached analysis: %w", err)
	}
	atomic.AddInt64(&c.hits, 1)
	return &res, true, nil
}

// Set stores res under the key for foodID and p.
func (c *Redis) Set(ctx context.Context, foodID int, p clinical.PatientProfile, res clinical.AnalysisResult) error {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	if err := c.client.Set(ctx, Key(c.prefix, foodID, p), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}
	return nil
}

// Stats reports hit and miss counts.
func (c *Redis) Stats() Stats {
	return Stats{
		Enabled: true,
		Hits:    atomic.LoadInt64(&c.hits),
		Misses:  atomic.LoadInt64(&c.misses),
	}
}

// Noop never stores anything. It is used when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, int, clinical.PatientProfile) (*clinical.AnalysisResult, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, int, clinical.PatientProfile, clinical.AnalysisResult) error {
	return nil
}

func (Noop) Stats() Stats { return Stats{} }

// Options describe how to reach Redis.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	// Prefix defaults to DefaultPrefix.
	Prefix string
	// Catalog is the fingerprint of the catalog results are computed against.
	Catalog string
}

// Connect returns a Noop cache when opts.Addr is empty, otherwise a Redis
// cache after a successful PING. The returned close func is never nil.
func Connect(ctx context.Context, opts Options) (ResultCache, func() error, error) {
	if opts.Addr == "" {
		return Noop{}, func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return NewRedis(client, opts.TTL, WithPrefix(Namespace(opts.Prefix, opts.Catalog))), client.Close, nil
}

package metrics

import (
	"fmt"
	"os"
	"runtime"
)

// Health is the snapshot served on /health.
type Health struct {
	Status  string        `json:"status"`
	Catalog CatalogHealth `json:"catalog"`
	Schema  *SchemaHealth `json:"schema,omitempty"`
	Cache   CacheHealth   `json:"cache"`
	Process ProcessHealth `json:"process"`
}

type CatalogHealth struct {
	Foods       int    `json:"foods"`
	Fingerprint string `json:"fingerprint"`
}

// SchemaHealth is the applied migration. Error is set when it could not be read.
type SchemaHealth struct {
	Version uint   `json:"version"`
	Dirty   bool   `json:"dirty"`
	Error   string `json:"error,omitempty"`
}

type CacheHealth struct {
	Enabled bool    `json:"enabled"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hitRate"`
}

type ProcessHealth struct {
	AllocMB      uint64 `json:"allocMb"`
	SysMB        uint64 `json:"sysMb"`
	NumGC        uint32 `json:"numGc"`
	Goroutines   int    `json:"goroutines"`
	DatabaseSize string `json:"databaseSize,omitempty"`
}

// NewHealth assembles a snapshot. Status is "degraded" when the schema could
// not be read or a migration was left dirty, otherwise "ok". dbPath may be
// empty when no database is attached.
func NewHealth(catalog CatalogHealth, schema *SchemaHealth, cache CacheHealth, dbPath string) Health {
	if total := cache.Hits + cache.Misses; total > 0 {
		cache.HitRate = float64(cache.Hits) / float64(total)
	}

	status := "ok"
	if schema != nil && (schema.Error != "" || schema.Dirty) {
		status = "degraded"
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	process := ProcessHealth{
		AllocMB:    m.Alloc / 1024 / 1024,
		SysMB:      m.Sys / 1024 / 1024,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
	if dbPath != "" {
		process.DatabaseSize = formatBytes(databaseSize(dbPath))
	}

	return Health{
		Status:  status,
		Catalog: catalog,
		Schema:  schema,
		Cache:   cache,
		Process: process,
	}
}

// databaseSize sums the SQLite file and its WAL and shared-memory files.
func databaseSize(dbPath string) int64 {
	var size int64
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if info, err := os.Stat(p); err == nil {
			size += info.Size()
		}
	}
	return size
}

func formatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

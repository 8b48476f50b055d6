package database

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
)

// TypeCount represents a count by type
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// CachedStats holds the cached conversion statistics
type CachedStats struct {
	LastRun      string      `json:"lastRun,omitempty"`
	Runs         int         `json:"runs"`
	Conversions  int         `json:"conversions"`
	ByConfidence []TypeCount `json:"byConfidence"`
	ByVariant    []TypeCount `json:"byVariant"`
}

// statsCache holds the singleton instance
type statsCache struct {
	mu    sync.RWMutex
	stats *CachedStats
}

var cache = &statsCache{}

// GetCachedStats returns the cached stats if available, nil otherwise
func GetCachedStats() *CachedStats {
	if !cache.mu.TryRLock() {
		return nil
	}
	defer cache.mu.RUnlock()

	return cache.stats
}

// ComputeAndCacheStats computes the stats from the database and stores them in cache
func ComputeAndCacheStats(force bool) *CachedStats {
	if force {
		cache.mu.Lock()
	} else {
		if !cache.mu.TryLock() {
			// Another computation is in progress, return nil to indicate stats are not available
			return nil
		}
	}
	defer cache.mu.Unlock()

	stats := &CachedStats{}

	// Latest completed run, if any
	var lastRun Run
	err := DB.Where("complete = ?", true).Order("date DESC").First(&lastRun).Error
	if err == nil {
		stats.LastRun = lastRun.Date.Format(time.RFC3339)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}

	var runCount int64
	DB.Model(&Run{}).Count(&runCount)
	stats.Runs = int(runCount)

	var conversionCount int64
	DB.Model(&Conversion{}).Count(&conversionCount)
	stats.Conversions = int(conversionCount)

	// Count conversions by confidence
	DB.Model(&Conversion{}).
		Select("confidence as type, COUNT(*) as count").
		Group("confidence").
		Scan(&stats.ByConfidence)

	// Count conversions by variant
	DB.Model(&Conversion{}).
		Select("variant as type, COUNT(*) as count").
		Group("variant").
		Scan(&stats.ByVariant)

	cache.stats = stats
	return cache.stats
}

// InvalidateStatsCache marks the cache as invalid so it will be recomputed on next access
func InvalidateStatsCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.stats = nil
}

// HasCachedStats returns whether stats are currently cached
func HasCachedStats() bool {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return cache.stats != nil
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheEntry_HasRecord(t *testing.T) {
	empty := CacheEntry{Zone: "pzz135"}
	assert.False(t, empty.HasRecord())

	filled := CacheEntry{Zone: "pzz135", Record: &ForecastRecord{Zone: "pzz135"}}
	assert.True(t, filled.HasRecord())
}

func TestCacheEntry_Age(t *testing.T) {
	now := time.Date(2025, 8, 5, 22, 5, 0, 0, time.UTC)

	empty := CacheEntry{Zone: "pzz135"}
	assert.Negative(t, empty.Age(now))

	entry := CacheEntry{
		Zone:      "pzz135",
		Record:    &ForecastRecord{Zone: "pzz135"},
		FetchedAt: now.Add(-5 * time.Minute),
	}
	assert.Equal(t, 5*time.Minute, entry.Age(now))
}

func TestCacheEntry_FreshBoundary(t *testing.T) {
	now := time.Date(2025, 8, 5, 22, 5, 0, 0, time.UTC)
	maxAge := 10 * time.Minute

	entry := CacheEntry{
		Zone:      "pzz135",
		Record:    &ForecastRecord{Zone: "pzz135"},
		FetchedAt: now.Add(-maxAge + time.Second),
	}
	assert.True(t, entry.Fresh(now, maxAge))

	// Exactly maxAge old counts as stale.
	entry.FetchedAt = now.Add(-maxAge)
	assert.False(t, entry.Fresh(now, maxAge))

	entry.FetchedAt = now.Add(-maxAge - time.Second)
	assert.False(t, entry.Fresh(now, maxAge))
}

func TestCacheEntry_FreshWithoutRecord(t *testing.T) {
	now := time.Now()
	entry := CacheEntry{Zone: "pzz135", FetchedAt: now}
	assert.False(t, entry.Fresh(now, time.Hour))
}

func TestCacheEntry_ErrorStateIndependentOfRecord(t *testing.T) {
	now := time.Now()
	entry := CacheEntry{
		Zone:        "pzz135",
		Record:      &ForecastRecord{Zone: "pzz135"},
		FetchedAt:   now.Add(-time.Hour),
		LastError:   "fetch pzz135: timeout",
		LastErrorAt: now,
	}
	assert.True(t, entry.HasRecord())
	assert.NotEmpty(t, entry.LastError)
}

func TestZoneCode_Valid(t *testing.T) {
	assert.True(t, ZoneCode("pzz135").Valid())
	assert.True(t, ZoneCode("amz651").Valid())

	assert.False(t, ZoneCode("PZZ135").Valid())
	assert.False(t, ZoneCode("pzz13").Valid())
	assert.False(t, ZoneCode("pzz1350").Valid())
	assert.False(t, ZoneCode("pz1355").Valid())
	assert.False(t, ZoneCode("").Valid())
	assert.False(t, ZoneCode("pzz 35").Valid())
}

package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marinecast/internal/models"
	"marinecast/internal/testutil"
)

func newTestStore(t *testing.T) EntryStoreInterface {
	t.Helper()
	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	return NewEntryStore(NewZoneRegistry(), comp)
}

func testRecord(zone models.ZoneCode) *models.ForecastRecord {
	return &models.ForecastRecord{
		Zone:   zone,
		Name:   "Test Zone",
		Issued: time.Date(2025, time.August, 5, 15, 5, 0, 0, time.UTC),
		Periods: []models.ForecastPeriod{
			{Name: "TONIGHT", RawText: "W wind 10 kt."},
		},
	}
}

func TestEntryStore_EmptyEntriesForAllZones(t *testing.T) {
	store := newTestStore(t)

	entry, ok := store.Get("pzz135")
	require.True(t, ok)
	assert.False(t, entry.HasRecord())
	assert.Empty(t, entry.LastError)
	assert.False(t, entry.InFlight)

	assert.Len(t, store.Snapshot(), 14)
	assert.Equal(t, 0, store.RecordCount())
}

func TestEntryStore_UnknownZone(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Get("zzz999")
	assert.False(t, ok)
}

func TestEntryStore_PutRecordClearsError(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	store.PutError("pzz135", errors.New("boom"), now.Add(-time.Minute))
	store.PutRecord("pzz135", testRecord("pzz135"), "raw text", now)

	entry, ok := store.Get("pzz135")
	require.True(t, ok)
	require.True(t, entry.HasRecord())
	assert.Equal(t, now, entry.FetchedAt)
	assert.Empty(t, entry.LastError)
	assert.True(t, entry.LastErrorAt.IsZero())
	assert.Equal(t, 1, store.RecordCount())
}

func TestEntryStore_PutErrorRetainsRecord(t *testing.T) {
	store := newTestStore(t)
	fetchedAt := time.Now().Add(-time.Hour)

	record := testRecord("pzz135")
	store.PutRecord("pzz135", record, "raw text", fetchedAt)
	store.PutError("pzz135", errors.New("upstream down"), time.Now())

	entry, ok := store.Get("pzz135")
	require.True(t, ok)
	require.True(t, entry.HasRecord())
	assert.Equal(t, record, entry.Record)
	assert.Equal(t, fetchedAt, entry.FetchedAt)
	assert.Equal(t, "upstream down", entry.LastError)
	assert.False(t, entry.LastErrorAt.IsZero())
}

func TestEntryStore_RawTextRoundtrip(t *testing.T) {
	store := newTestStore(t)

	store.PutRecord("pzz135", testRecord("pzz135"), pzz135Bulletin, time.Now())

	raw, ok := store.RawText("pzz135")
	require.True(t, ok)
	assert.Equal(t, pzz135Bulletin, raw)

	_, ok = store.RawText("pzz110")
	assert.False(t, ok)
}

func TestEntryStore_SetInFlight(t *testing.T) {
	store := newTestStore(t)

	store.SetInFlight("pzz135", true)
	entry, _ := store.Get("pzz135")
	assert.True(t, entry.InFlight)

	store.SetInFlight("pzz135", false)
	entry, _ = store.Get("pzz135")
	assert.False(t, entry.InFlight)
}

func TestEntryStore_RefreshTotals(t *testing.T) {
	store := newTestStore(t)

	store.PutRecord("pzz135", testRecord("pzz135"), "raw", time.Now())
	store.PutRecord("pzz110", testRecord("pzz110"), "raw", time.Now())
	store.PutError("pzz134", errors.New("boom"), time.Now())

	successes, failures := store.RefreshTotals()
	assert.Equal(t, int64(2), successes)
	assert.Equal(t, int64(1), failures)
}

func TestEntryStore_SnapshotIsCopy(t *testing.T) {
	store := newTestStore(t)
	store.PutRecord("pzz135", testRecord("pzz135"), "raw", time.Now())

	snapshot := store.Snapshot()
	entry := snapshot["pzz135"]
	entry.LastError = "mutated"
	snapshot["pzz135"] = entry

	fresh, _ := store.Get("pzz135")
	assert.Empty(t, fresh.LastError)
}

func TestEntryStore_MockCompressorPassThrough(t *testing.T) {
	store := NewEntryStore(NewZoneRegistry(), &testutil.MockCompressor{})
	store.PutRecord("pzz135", testRecord("pzz135"), "plain raw", time.Now())

	raw, ok := store.RawText("pzz135")
	require.True(t, ok)
	assert.Equal(t, "plain raw", raw)
}

package forecast

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"marinecast/internal/forecast/interfaces"
	"marinecast/internal/models"
)

type EntryStoreInterface interface {
	Get(zone models.ZoneCode) (models.CacheEntry, bool)
	PutRecord(zone models.ZoneCode, record *models.ForecastRecord, raw string, at time.Time)
	PutError(zone models.ZoneCode, err error, at time.Time)
	SetInFlight(zone models.ZoneCode, inFlight bool)
	Snapshot() map[models.ZoneCode]models.CacheEntry
	RawText(zone models.ZoneCode) (string, bool)
	RecordCount() int
	RefreshTotals() (successes, failures int64)
}

// EntryStore holds one CacheEntry per registered zone for the lifetime of the
// process. Entries are created empty at construction and never deleted.
// Writes replace the whole entry under the lock, so readers never observe a
// half-updated entry. Raw bulletin text is kept zstd-compressed.
type EntryStore struct {
	mu      sync.RWMutex
	entries map[models.ZoneCode]*models.CacheEntry
	raw     map[models.ZoneCode][]byte

	compressor interfaces.CompressorInterface

	successes atomic.Int64
	failures  atomic.Int64
}

func NewEntryStore(registry ZoneRegistryInterface, compressor interfaces.CompressorInterface) EntryStoreInterface {
	zones := registry.ListAll()
	entries := make(map[models.ZoneCode]*models.CacheEntry, len(zones))
	for _, meta := range zones {
		entries[meta.Code] = &models.CacheEntry{Zone: meta.Code}
	}
	return &EntryStore{
		entries:    entries,
		raw:        make(map[models.ZoneCode][]byte, len(zones)),
		compressor: compressor,
	}
}

func (s *EntryStore) Get(zone models.ZoneCode) (models.CacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[zone]
	if !ok {
		return models.CacheEntry{}, false
	}
	return *entry, true
}

func (s *EntryStore) PutRecord(zone models.ZoneCode, record *models.ForecastRecord, raw string, at time.Time) {
	compressed, err := s.compressor.Compress([]byte(raw))

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[zone]
	if !ok {
		return
	}
	next := *entry
	next.Record = record
	next.FetchedAt = at
	next.LastError = ""
	next.LastErrorAt = time.Time{}
	*entry = next

	if err == nil {
		s.raw[zone] = compressed
	}
	s.successes.Inc()
}

// PutError records a failed refresh. The previous record and its timestamp
// are retained; a failed refresh never evicts a last-known-good record.
func (s *EntryStore) PutError(zone models.ZoneCode, err error, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[zone]
	if !ok {
		return
	}
	next := *entry
	next.LastError = err.Error()
	next.LastErrorAt = at
	*entry = next

	s.failures.Inc()
}

func (s *EntryStore) SetInFlight(zone models.ZoneCode, inFlight bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[zone]; ok {
		entry.InFlight = inFlight
	}
}

// Snapshot returns a copy of every entry. Each entry is consistent with
// itself; the map as a whole is not a single instant across zones.
func (s *EntryStore) Snapshot() map[models.ZoneCode]models.CacheEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[models.ZoneCode]models.CacheEntry, len(s.entries))
	for zone, entry := range s.entries {
		out[zone] = *entry
	}
	return out
}

func (s *EntryStore) RawText(zone models.ZoneCode) (string, bool) {
	s.mu.RLock()
	compressed, ok := s.raw[zone]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}

	raw, err := s.compressor.Decompress(compressed)
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func (s *EntryStore) RecordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, entry := range s.entries {
		if entry.Record != nil {
			count++
		}
	}
	return count
}

func (s *EntryStore) RefreshTotals() (int64, int64) {
	return s.successes.Load(), s.failures.Load()
}

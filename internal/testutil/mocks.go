package testutil

import (
	"context"
	"sync"
	"time"

	"marinecast/internal/models"
	"marinecast/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCompressor passes data through unchanged.
type MockCompressor struct{}

func (m *MockCompressor) Compress(val []byte) ([]byte, error)   { return val, nil }
func (m *MockCompressor) Decompress(val []byte) ([]byte, error) { return val, nil }

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu            sync.Mutex
	Requests      int
	CacheHits     int
	CacheMisses   int
	Fetches       map[string]int
	ParseFailures int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncFetches(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fetches == nil {
		m.Fetches = make(map[string]int)
	}
	m.Fetches[outcome]++
}
func (m *MockMetrics) ObserveFetchDuration(_ time.Duration) {}
func (m *MockMetrics) IncParseFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ParseFailures++
}

// MockFetcher implements forecast.FetcherInterface with canned responses.
// When Block is set, Fetch waits on it before returning, which lets tests
// hold a flight open while concurrent callers pile up.
type MockFetcher struct {
	mu        sync.Mutex
	Responses map[models.ZoneCode]string
	Errors    map[models.ZoneCode]error
	Block     chan struct{}
	calls     map[models.ZoneCode]int
}

func (m *MockFetcher) Fetch(ctx context.Context, zone models.ZoneCode) (string, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[models.ZoneCode]int)
	}
	m.calls[zone]++
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.Errors[zone]; ok {
		return "", err
	}
	return m.Responses[zone], nil
}

func (m *MockFetcher) CallCount(zone models.ZoneCode) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[zone]
}

func (m *MockFetcher) SetError(zone models.ZoneCode, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Errors == nil {
		m.Errors = make(map[models.ZoneCode]error)
	}
	if err == nil {
		delete(m.Errors, zone)
		return
	}
	m.Errors[zone] = err
}

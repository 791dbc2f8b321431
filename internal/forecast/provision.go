package forecast

import (
	"github.com/jonboulle/clockwork"

	"marinecast/internal/providers"
)

// Providers used by dependency injection.

func NewClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func NewRecordCounter(store EntryStoreInterface) providers.RecordCounter {
	return store
}

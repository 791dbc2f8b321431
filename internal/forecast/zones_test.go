package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marinecast/internal/models"
)

func TestZoneRegistry_ListAll(t *testing.T) {
	registry := NewZoneRegistry()

	zones := registry.ListAll()
	require.Len(t, zones, 14)
	assert.Equal(t, models.ZoneCode("pzz100"), zones[0].Code)
	assert.Equal(t, models.ZoneCode("pzz176"), zones[13].Code)
}

func TestZoneRegistry_ListAllIsCopy(t *testing.T) {
	registry := NewZoneRegistry()

	zones := registry.ListAll()
	zones[0].Name = "mutated"

	again := registry.ListAll()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestZoneRegistry_Lookup(t *testing.T) {
	registry := NewZoneRegistry()

	meta, ok := registry.Lookup("pzz135")
	require.True(t, ok)
	assert.Equal(t, "Puget Sound and Hood Canal", meta.Name)

	_, ok = registry.Lookup("pzz999")
	assert.False(t, ok)
}

func TestZoneRegistry_LookupRejectsMalformedCodes(t *testing.T) {
	registry := NewZoneRegistry()

	for _, code := range []models.ZoneCode{"", "PZZ135", "pzz13", "pzz1355", "pz z135", "../etc"} {
		_, ok := registry.Lookup(code)
		assert.False(t, ok, "code %q should be rejected", code)
	}
}

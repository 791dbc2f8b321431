package forecast

import (
	"marinecast/internal/models"
)

// zoneTable is the fixed set of Puget Sound area marine zones served by the
// upstream coastal waters forecast. Order is meaningful and preserved by
// ListAll.
var zoneTable = []models.ZoneMetadata{
	{Code: "pzz100", Name: "Synopsis for Northern and Central Washington Coastal and Inland Waters"},
	{Code: "pzz110", Name: "Grays Harbor Bar"},
	{Code: "pzz130", Name: "West Entrance U.S. Waters Strait Of Juan De Fuca"},
	{Code: "pzz131", Name: "Central U.S. Waters Strait Of Juan De Fuca"},
	{Code: "pzz132", Name: "East Entrance U.S. Waters Strait Of Juan De Fuca"},
	{Code: "pzz133", Name: "Northern Inland Waters Including The San Juan Islands"},
	{Code: "pzz134", Name: "Admiralty Inlet"},
	{Code: "pzz135", Name: "Puget Sound and Hood Canal"},
	{Code: "pzz150", Name: "Coastal Waters From Cape Flattery To James Island Out 10 Nm"},
	{Code: "pzz153", Name: "Coastal Waters From James Island To Point Grenville Out 10 Nm"},
	{Code: "pzz156", Name: "Coastal Waters From Point Grenville To Cape Shoalwater Out 10 Nm"},
	{Code: "pzz170", Name: "Coastal Waters From Cape Flattery To James Island 10 To 60 Nm"},
	{Code: "pzz173", Name: "Coastal Waters From James Island To Point Grenville 10 To 60 Nm"},
	{Code: "pzz176", Name: "Coastal Waters From Point Grenville To Cape Shoalwater 10 To 60 Nm"},
}

type ZoneRegistryInterface interface {
	Lookup(code models.ZoneCode) (models.ZoneMetadata, bool)
	ListAll() []models.ZoneMetadata
}

type ZoneRegistry struct {
	ordered []models.ZoneMetadata
	byCode  map[models.ZoneCode]models.ZoneMetadata
}

func NewZoneRegistry() ZoneRegistryInterface {
	byCode := make(map[models.ZoneCode]models.ZoneMetadata, len(zoneTable))
	for _, meta := range zoneTable {
		byCode[meta.Code] = meta
	}
	return &ZoneRegistry{
		ordered: zoneTable,
		byCode:  byCode,
	}
}

func (r *ZoneRegistry) Lookup(code models.ZoneCode) (models.ZoneMetadata, bool) {
	if !code.Valid() {
		return models.ZoneMetadata{}, false
	}
	meta, ok := r.byCode[code]
	return meta, ok
}

func (r *ZoneRegistry) ListAll() []models.ZoneMetadata {
	out := make([]models.ZoneMetadata, len(r.ordered))
	copy(out, r.ordered)
	return out
}

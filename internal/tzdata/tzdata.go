// Package tzdata owns the immutable zone reference tables: the canonical
// record list and the abbreviation, city, country and display-name indexes
// derived from it. Tables are built once, lazily, on first use; after that
// every accessor is a read over immutable data and needs no synchronization.
package tzdata

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Tables is the loaded, immutable view of the reference data.
type Tables struct {
	records       []Record
	byID          map[string]*Record
	abbreviations map[string]string
	cities        map[string]string
	countries     map[string][]string
	overrides     map[string]string
	common        []string
}

var (
	tables Tables
	once   sync.Once
)

// Get returns the loaded tables, building them on first call. Concurrent
// first access serializes on the once guard so no caller ever observes a
// partially built table set.
func Get() *Tables {
	once.Do(build)

	return &tables
}

func build() {
	byID := make(map[string]*Record, len(records))
	abbrs := make(map[string]string)
	countries := make(map[string][]string)

	for i := range records {
		rec := &records[i]
		byID[rec.ID] = rec

		for _, abbr := range rec.Abbreviations {
			key := strings.ToLower(abbr)
			// First record keeps an ambiguous abbreviation.
			if _, taken := abbrs[key]; !taken {
				abbrs[key] = rec.ID
			}
		}

		for _, country := range rec.Countries {
			key := strings.ToUpper(country)
			countries[key] = append(countries[key], rec.ID)
		}
	}

	tables = Tables{
		records:       records,
		byID:          byID,
		abbreviations: abbrs,
		cities:        cities,
		countries:     countries,
		overrides:     displayOverrides,
		common:        commonZones,
	}

	log.Debug().
		Int("zones", len(records)).
		Int("abbreviations", len(abbrs)).
		Int("cities", len(cities)).
		Int("countries", len(countries)).
		Msg("Timezone reference tables loaded")
}

// Records returns the canonical record list in declaration order. Callers
// must treat the slice as read-only.
func (t *Tables) Records() []Record {
	return t.records
}

// Record returns the record for a canonical id.
func (t *Tables) Record(id string) (*Record, bool) {
	rec, ok := t.byID[id]

	return rec, ok
}

// ByAbbreviation resolves a zone abbreviation case-insensitively. An
// abbreviation shared by several zones maps to the earliest record.
func (t *Tables) ByAbbreviation(abbr string) (string, bool) {
	id, ok := t.abbreviations[strings.ToLower(abbr)]

	return id, ok
}

// ByCity resolves a city name case-insensitively.
func (t *Tables) ByCity(city string) (string, bool) {
	id, ok := t.cities[strings.ToLower(city)]

	return id, ok
}

// ByCountry returns the canonical ids serving an ISO 3166-1 alpha-2 code.
func (t *Tables) ByCountry(code string) ([]string, bool) {
	ids, ok := t.countries[strings.ToUpper(code)]

	return ids, ok
}

// ByOffset returns every canonical id whose base offset equals the given
// duration exactly. There is no tolerance.
func (t *Tables) ByOffset(offset time.Duration) []string {
	var ids []string

	for i := range t.records {
		if t.records[i].BaseOffset == offset {
			ids = append(ids, t.records[i].ID)
		}
	}

	return ids
}

// CanonicalToAlternate returns the platform-native id for a canonical id.
func (t *Tables) CanonicalToAlternate(id string) (string, bool) {
	rec, ok := t.byID[id]
	if !ok || rec.WindowsID == "" {
		return "", false
	}

	return rec.WindowsID, true
}

// AlternateToCanonical scans for a record whose alternate id matches
// case-insensitively. When several records share an alternate id the scan
// order decides which canonical id wins; that order is the table declaration
// order and is not otherwise specified.
func (t *Tables) AlternateToCanonical(id string) (string, bool) {
	for i := range t.records {
		if t.records[i].WindowsID != "" && strings.EqualFold(t.records[i].WindowsID, id) {
			return t.records[i].ID, true
		}
	}

	return "", false
}

// DisplayOverride returns the curated friendly name for a canonical id.
func (t *Tables) DisplayOverride(id string) (string, bool) {
	name, ok := t.overrides[id]

	return name, ok
}

// Common returns the curated common-zone list. Callers must treat the slice
// as read-only.
func (t *Tables) Common() []string {
	return t.common
}

// Abbreviations returns the abbreviation index keys mapped to canonical ids.
// Callers must treat the map as read-only.
func (t *Tables) Abbreviations() map[string]string {
	return t.abbreviations
}

// Cities returns the city index. Callers must treat the map as read-only.
func (t *Tables) Cities() map[string]string {
	return t.cities
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ReferenceOverrides lets operators refresh the built-in market reference
// tables from a JSON file without recompiling. Values are UF/m² averages
// and [min, max] CLP/m² rent ranges keyed by commune.
type ReferenceOverrides struct {
	ReferencePrices map[string]float64    `json:"reference_prices"`
	RentRanges      map[string][2]float64 `json:"rent_ranges"`
}

var (
	referenceOverrides *ReferenceOverrides
	referenceLock      sync.RWMutex
)

// LoadReferenceOverrides loads the override file. An empty path is a no-op
// so the built-in tables stay in effect.
func LoadReferenceOverrides(path string) error {
	if path == "" {
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read reference overrides: %v", err)
	}

	var overrides ReferenceOverrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse reference overrides: %v", err)
	}

	referenceLock.Lock()
	referenceOverrides = &overrides
	referenceLock.Unlock()
	return nil
}

// ReferencePriceOverride returns the overridden UF/m² average for a
// commune, if any.
func ReferencePriceOverride(commune string) (float64, bool) {
	referenceLock.RLock()
	defer referenceLock.RUnlock()

	if referenceOverrides == nil {
		return 0, false
	}
	price, ok := referenceOverrides.ReferencePrices[commune]
	return price, ok
}

// RentRangeOverride returns the overridden [min, max] CLP/m² rent range
// for a commune, if any.
func RentRangeOverride(commune string) ([2]float64, bool) {
	referenceLock.RLock()
	defer referenceLock.RUnlock()

	if referenceOverrides == nil {
		return [2]float64{}, false
	}
	r, ok := referenceOverrides.RentRanges[commune]
	return r, ok
}

// ResetReferenceOverrides drops any loaded overrides. Used by tests.
func ResetReferenceOverrides() {
	referenceLock.Lock()
	referenceOverrides = nil
	referenceLock.Unlock()
}

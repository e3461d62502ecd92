// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadUnitDefinitions reads the unit configuration file and populates the
// UnitLibrary.
func LoadUnitDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read unit definitions file: %w", err)
	}

	var unitDefs []UnitDefinition
	if err := json.Unmarshal(file, &unitDefs); err != nil {
		return fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	UnitLibrary = make(map[string]UnitDefinition)
	for _, def := range unitDefs {
		UnitLibrary[def.ID] = def
	}

	log.Printf("Loaded %d unit definitions", len(UnitLibrary))
	return nil
}

// LoadTowerDefinitions reads the tower configuration file and populates the
// TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}

	log.Printf("Loaded %d tower definitions", len(TowerLibrary))
	return nil
}

// UseDefaultLibraries fills both libraries from the built-in catalogs.
// Missing config files degrade to defaults instead of stopping the game.
func UseDefaultLibraries() {
	UnitLibrary = make(map[string]UnitDefinition)
	for _, def := range DefaultUnitDefs() {
		UnitLibrary[def.ID] = def
	}
	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range DefaultTowerDefs() {
		TowerLibrary[def.ID] = def
	}
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/astrophot/passband/internal/passband"
)

// Settings holds the filter table configuration.
type Settings struct {
	// Systems maps a photometric system name to its ordered string of
	// valid filter letters, e.g. "Johnson" -> "UBVRIJHKLMN".
	Systems map[string]string `json:"systems"`

	// Wavelengths maps a filter letter to its canonical reference
	// wavelength in nanometres. Keyed by letter alone: every system
	// letter must appear here, and systems sharing a letter share its
	// wavelength.
	Wavelengths map[string]int `json:"wavelengths"`
}

// DefaultSettings returns settings matching the built-in catalog.
func DefaultSettings() *Settings {
	systems := make(map[string]string)
	for name, letters := range passband.DefaultSystems() {
		systems[string(name)] = letters
	}
	return &Settings{
		Systems:     systems,
		Wavelengths: passband.DefaultWavelengths(),
	}
}

// Load reads settings from a JSON file. A missing file is not an error:
// the defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToCatalog builds a validated passband catalog from the settings.
// It fails if any system uses a letter absent from the wavelength table.
func (s *Settings) ToCatalog() (*passband.Catalog, error) {
	systems := make(map[passband.System]string, len(s.Systems))
	for name, letters := range s.Systems {
		systems[passband.System(name)] = letters
	}
	return passband.NewCatalog(systems, s.Wavelengths)
}

package stockmon

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Local UI preferences. The browser version kept these in localStorage under
// fixed keys; here they live in a small JSON file under the user config
// directory and survive only on this machine.

const (
	// VisibilityKey stores whether the total asset value is displayed or
	// masked. Values are "visible" and "hidden".
	VisibilityKey = "total_asset_visibility"
	// ChartSettingsKey stores the chart tooltip mode as a JSON object
	// with a single "simpleTooltip" flag.
	ChartSettingsKey = "portfolio_chart_settings"
)

const prefsFile = "prefs.json"

// Prefs is the persisted preference store: opaque string values under fixed
// string identifiers.
type Prefs struct {
	path   string
	values map[string]string
}

// DefaultPrefsDir returns the per-user preference directory.
func DefaultPrefsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(dir, "stockmon")
}

// LoadPrefs reads the preference file from dir, returning empty preferences
// when none exists yet.
func LoadPrefs(dir string) (*Prefs, error) {
	p := &Prefs{path: filepath.Join(dir, prefsFile), values: make(map[string]string)}
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the preferences back to disk.
func (p *Prefs) Save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0644)
}

// Get returns the raw value stored under key.
func (p *Prefs) Get(key string) string { return p.values[key] }

// Set stores a raw value under key.
func (p *Prefs) Set(key, value string) { p.values[key] = value }

// TotalAssetVisible reports whether the total asset value should be shown.
// Anything but an explicit "hidden" means visible.
func (p *Prefs) TotalAssetVisible() bool { return p.values[VisibilityKey] != "hidden" }

// SetTotalAssetVisible records the visibility flag.
func (p *Prefs) SetTotalAssetVisible(visible bool) {
	if visible {
		p.values[VisibilityKey] = "visible"
	} else {
		p.values[VisibilityKey] = "hidden"
	}
}

// SimpleTooltip reports whether history reports should show only the total
// instead of the full per-asset breakdown.
func (p *Prefs) SimpleTooltip() bool {
	var s struct {
		SimpleTooltip bool `json:"simpleTooltip"`
	}
	if raw := p.values[ChartSettingsKey]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return false
		}
	}
	return s.SimpleTooltip
}

// SetSimpleTooltip records the tooltip mode.
func (p *Prefs) SetSimpleTooltip(simple bool) {
	data, _ := json.Marshal(struct {
		SimpleTooltip bool `json:"simpleTooltip"`
	}{simple})
	p.values[ChartSettingsKey] = string(data)
}

package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwel/kwm/internal/config"
)

// Load loads a scenario by name, searching user scenarios first, then the
// bundled set installed alongside kwm.
func Load(name string) (*Scenario, error) {
	paths := []string{
		filepath.Join(config.ConfigDir(), "scenarios", name+".yaml"),
		filepath.Join(config.DataDir(), "scenarios", name+".yaml"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read scenario %s: %w", path, err)
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse scenario %s: %w", path, err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("validate scenario %s: %w", path, err)
		}
		return s, nil
	}

	if raw, ok := Bundled[name]; ok {
		s, err := Parse([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("parse bundled scenario %s: %w", name, err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("validate bundled scenario %s: %w", name, err)
		}
		return s, nil
	}

	return nil, fmt.Errorf("scenario not found: %s", name)
}

// List returns available scenario names: user-installed, then bundled.
func List() []string {
	seen := make(map[string]bool)
	var names []string

	dirs := []string{
		filepath.Join(config.ConfigDir(), "scenarios"),
		filepath.Join(config.DataDir(), "scenarios"),
	}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
				continue
			}
			base := entry.Name()[:len(entry.Name())-len(".yaml")]
			if !seen[base] {
				seen[base] = true
				names = append(names, base)
			}
		}
	}
	for name := range Bundled {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// InstallBundled writes every bundled scenario into dataDir/scenarios,
// skipping files that already exist.
func InstallBundled() error {
	dir := filepath.Join(config.DataDir(), "scenarios")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create scenarios dir: %w", err)
	}
	for name, raw := range Bundled {
		path := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
			return fmt.Errorf("write scenario %s: %w", name, err)
		}
	}
	return nil
}

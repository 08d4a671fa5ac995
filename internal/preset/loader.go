package preset

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/xtding233/packsim/internal/product"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a preset catalog.
type File struct {
	Version string           `yaml:"version,omitempty"`
	Presets []product.Preset `yaml:"presets"`
}

// Loader reads a YAML catalog file and merges it over the built-in presets.
type Loader struct {
	path string

	mu    sync.RWMutex
	cache *Catalog
}

// NewLoader creates a loader for path. An empty path means built-ins only.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Path() string { return l.path }

// Load returns the merged catalog: built-in <- file. Entries in the file
// replace built-ins with the same name and append new ones.
func (l *Loader) Load() (*Catalog, error) {
	l.mu.RLock()
	if c := l.cache; c != nil {
		l.mu.RUnlock()
		return c, nil
	}
	l.mu.RUnlock()

	f, err := readYAML(l.path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", l.path, err)
	}
	if err := ValidateCatalog(f.Presets); err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	merged := NewCatalog(append(Builtin(), f.Presets...)...)

	l.mu.Lock()
	l.cache = merged
	l.mu.Unlock()
	return merged, nil
}

// Invalidate drops the cached catalog. Call after the file changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = nil
}

// readYAML loads a catalog file. A missing file or empty path yields an empty File.
func readYAML(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{}, nil
		}
		return File{}, err
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// SPDX-License-Identifier: MIT

package algebra

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"
)

//go:embed data/*.yaml
var embedded embed.FS

// Registry holds algebra configurations in registration order.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	configs map[string]Config
}

// NewRegistry returns a registry holding cfgs, in order.
func NewRegistry(cfgs ...Config) *Registry {
	r := &Registry{configs: make(map[string]Config, len(cfgs))}
	r.Merge(cfgs...)

	return r
}

// Default returns a registry of the embedded algebras: ega2d, ega3d, pga2dp,
// pga3dp.
func Default() (*Registry, error) {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("Default: %w", err)
	}
	r := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := embedded.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("Default: %w", err)
		}
		cfgs, err := Parse(e.Name(), data)
		if err != nil {
			return nil, fmt.Errorf("Default: %w", err)
		}
		r.Merge(cfgs...)
	}

	return r, nil
}

// LoadFile parses a YAML file and merges its algebras into r.
func (r *Registry) LoadFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("Registry.LoadFile: %w", err)
	}
	cfgs, err := Parse(name, data)
	if err != nil {
		return fmt.Errorf("Registry.LoadFile: %w", err)
	}
	r.Merge(cfgs...)

	return nil
}

// Merge registers cfgs. A config whose name is already present replaces the
// old one in place; new names are appended.
func (r *Registry) Merge(cfgs ...Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cfgs {
		if _, ok := r.configs[c.Name]; !ok {
			r.order = append(r.order, c.Name)
		}
		r.configs[c.Name] = c
	}
}

// Names returns the registered algebra names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Config returns the configuration registered under name.
func (r *Registry) Config(name string) (Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.configs[name]
	if !ok {
		return Config{}, fmt.Errorf("Registry.Config(%q): %w", name, ErrUnknownAlgebra)
	}

	return c, nil
}

// Build constructs the algebra registered under name.
func (r *Registry) Build(name string) (*Algebra, error) {
	c, err := r.Config(name)
	if err != nil {
		return nil, err
	}

	return New(c)
}

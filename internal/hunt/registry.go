// Package hunt holds the location registry and the sequential check-in rules.
package hunt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
	"github.com/goodnatureofminers/scavengerhunt-backend/pkg/safe"
	"gopkg.in/yaml.v3"
)

// Registry is the ordered, immutable list of hunt locations.
type Registry struct {
	locations []model.Location
	byKey     map[solana.PublicKey]model.Location
}

// NewRegistry validates that indices are contiguous from 1 and keys are unique.
func NewRegistry(locations []model.Location) (*Registry, error) {
	if len(locations) == 0 {
		return nil, errors.New("registry needs at least one location")
	}

	r := &Registry{
		locations: make([]model.Location, len(locations)),
		byKey:     make(map[solana.PublicKey]model.Location, len(locations)),
	}
	for i, loc := range locations {
		want, err := safe.Uint32(i + 1)
		if err != nil {
			return nil, err
		}
		if loc.Index != want {
			return nil, fmt.Errorf("location at position %d has index %d, want %d", i, loc.Index, want)
		}
		if loc.Key.IsZero() {
			return nil, fmt.Errorf("location %d has an empty key", loc.Index)
		}
		if prev, ok := r.byKey[loc.Key]; ok {
			return nil, fmt.Errorf("location %d reuses the key of location %d", loc.Index, prev.Index)
		}
		r.locations[i] = loc
		r.byKey[loc.Key] = loc
	}
	return r, nil
}

// GenerateRegistry creates n locations with fresh random keys.
func GenerateRegistry(n int) (*Registry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("location count %d must be positive", n)
	}
	locations := make([]model.Location, 0, n)
	for i := 1; i <= n; i++ {
		index, err := safe.Uint32(i)
		if err != nil {
			return nil, err
		}
		var key solana.PublicKey
		if _, err := rand.Read(key[:]); err != nil {
			return nil, fmt.Errorf("generate location key: %w", err)
		}
		locations = append(locations, model.Location{Index: index, Key: key})
	}
	return NewRegistry(locations)
}

type registryFile struct {
	Locations []struct {
		Index uint32 `yaml:"index"`
		Key   string `yaml:"key"`
	} `yaml:"locations"`
}

// LoadRegistryFile reads a fixed registry from a YAML file.
func LoadRegistryFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	return ParseRegistry(raw)
}

// ParseRegistry decodes a YAML registry document.
func ParseRegistry(raw []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	locations := make([]model.Location, 0, len(file.Locations))
	for _, entry := range file.Locations {
		key, err := solana.PublicKeyFromBase58(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("location %d key %q: %w", entry.Index, entry.Key, err)
		}
		locations = append(locations, model.Location{Index: entry.Index, Key: key})
	}
	return NewRegistry(locations)
}

// Lookup returns the location with the given index.
func (r *Registry) Lookup(index uint32) (model.Location, bool) {
	if index == 0 || int(index) > len(r.locations) {
		return model.Location{}, false
	}
	return r.locations[index-1], true
}

// LookupKey returns the location identified by key.
func (r *Registry) LookupKey(key solana.PublicKey) (model.Location, bool) {
	loc, ok := r.byKey[key]
	return loc, ok
}

// Len returns the number of locations.
func (r *Registry) Len() int {
	return len(r.locations)
}

// Locations returns a copy of the ordered locations.
func (r *Registry) Locations() []model.Location {
	out := make([]model.Location, len(r.locations))
	copy(out, r.locations)
	return out
}

package platforms

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/leadloop/leadloop/internal/models"
)

// Registry holds the catalog of lead-source platforms and their sync traits.
type Registry struct {
	platforms map[string]models.Platform
}

type registryFile struct {
	Platforms []models.Platform `yaml:"platforms"`
}

// Defaults returns a registry seeded with the built-in platform catalog.
func Defaults() *Registry {
	return newRegistry([]models.Platform{
		{Name: "linkedin", IsChronological: true, RequiresExtensionSync: true},
		{Name: "instagram", IsChronological: true, RequiresExtensionSync: true},
		{Name: "x", IsChronological: true, RequiresExtensionSync: false},
		{Name: "facebook_groups", IsChronological: true, RequiresExtensionSync: true},
		{Name: "google_maps", IsChronological: false, RequiresExtensionSync: false},
		{Name: "yelp", IsChronological: false, RequiresExtensionSync: false},
		{Name: "yellow_pages", IsChronological: false, RequiresExtensionSync: false},
	})
}

// Load reads a platform catalog from a YAML file. An empty path returns the
// built-in defaults.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read platforms file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse platforms file: %w", err)
	}

	if len(file.Platforms) == 0 {
		return nil, fmt.Errorf("platforms file %s defines no platforms", path)
	}

	return newRegistry(file.Platforms), nil
}

func newRegistry(list []models.Platform) *Registry {
	m := make(map[string]models.Platform, len(list))
	for _, p := range list {
		m[p.Name] = p
	}
	return &Registry{platforms: m}
}

// Get returns the platform with the given name.
func (r *Registry) Get(name string) (models.Platform, bool) {
	p, ok := r.platforms[name]
	return p, ok
}

// Names returns the sorted platform names in the catalog.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.platforms))
	for name := range r.platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AnyChronological reports whether any of the given platform names is a
// chronological feed. Unknown platforms are treated as non-chronological.
func (r *Registry) AnyChronological(names []string) bool {
	for _, name := range names {
		if p, ok := r.platforms[name]; ok && p.IsChronological {
			return true
		}
	}
	return false
}

// RequiresExtension reports whether the given platform needs the browser
// extension to run a sync.
func (r *Registry) RequiresExtension(name string) bool {
	p, ok := r.platforms[name]
	return ok && p.RequiresExtensionSync
}

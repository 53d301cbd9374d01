package project

import (
	"fmt"
	"maps"
	"sync"

	"github.com/vango-dev/charm/internal/errors"
	"github.com/vango-dev/charm/pkg/icons"
)

// DefaultPrefix is used when no prefix override is configured.
const DefaultPrefix = "ch"

// Configuration is the project-wide configuration.
type Configuration struct {
	// Prefix overrides DefaultPrefix.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" validate:"charm_token"`

	// Icons maps icon names to SVG markup, merged over the default set.
	Icons map[string]string `json:"icons,omitempty" yaml:"icons,omitempty"`
}

// Project is a holder for the active Configuration.
type Project struct {
	mu  sync.RWMutex
	cfg Configuration
}

// New creates a Project with the default prefix and icon set.
func New() *Project {
	return &Project{
		cfg: Configuration{
			Prefix: DefaultPrefix,
			Icons:  icons.Default(),
		},
	}
}

// Update validates cfg and makes it the active configuration. Icons are
// merged over the default set; an empty prefix selects DefaultPrefix.
// An invalid prefix leaves the active configuration untouched.
func (p *Project) Update(cfg Configuration) error {
	if err := Validator().Struct(cfg); err != nil {
		return errors.New(errors.CodeInvalidPrefix).
			WithDetail(fmt.Sprintf("prefix %q contains characters outside [a-z0-9_-]", cfg.Prefix)).
			WithSuggestion("Use lowercase letters, digits, '-' or '_'")
	}

	next := Configuration{
		Prefix: cfg.Prefix,
		Icons:  icons.Merge(icons.Default(), cfg.Icons),
	}
	if next.Prefix == "" {
		next.Prefix = DefaultPrefix
	}

	p.mu.Lock()
	p.cfg = next
	p.mu.Unlock()
	return nil
}

// Get returns a copy of the active configuration.
func (p *Project) Get() Configuration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Configuration{
		Prefix: p.cfg.Prefix,
		Icons:  maps.Clone(p.cfg.Icons),
	}
}

// Prefix returns the active prefix.
func (p *Project) Prefix() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg.Prefix
}

// Icon returns the SVG markup for name.
func (p *Project) Icon(name string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	svg, ok := p.cfg.Icons[name]
	return svg, ok
}

var defaultProject = New()

// Default returns the process-wide project.
func Default() *Project {
	return defaultProject
}

// UpdateProject updates the process-wide project.
func UpdateProject(cfg Configuration) error {
	return defaultProject.Update(cfg)
}

// GetProject returns the process-wide configuration.
func GetProject() Configuration {
	return defaultProject.Get()
}

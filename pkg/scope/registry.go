package scope

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Registry is the state shared by every scope in a process: which scope
// owns each tag, which component each base name resolves to, and every
// suffix ever used.
type Registry interface {
	// RegisterTag defines tag for c and records s as its owner. It returns
	// false without side effects when the tag is already registered.
	RegisterTag(tag string, s *Scope, c Component, baseName string) bool

	// LookupScope returns the scope owning tag.
	LookupScope(tag string) (*Scope, bool)

	// LookupComponent returns the component registered under baseName.
	LookupComponent(baseName string) (Component, bool)

	// Definition returns the element definition for tag.
	Definition(tag string) (*Definition, bool)

	// AddSuffix records a suffix in use.
	AddSuffix(suffix string)

	// Suffixes returns every recorded suffix in insertion order.
	Suffixes() []string

	// Tags returns every registered tag, sorted.
	Tags() []string
}

// MemoryRegistry is the in-process Registry.
type MemoryRegistry struct {
	mu         sync.RWMutex
	tags       map[string]*Scope
	components map[string]Component
	suffixes   []string
	elements   ElementRegistry
	logger     *slog.Logger
}

// RegistryOption configures a MemoryRegistry.
type RegistryOption func(*MemoryRegistry)

// WithElements sets the element registry definitions are written to.
// Registries sharing one ElementRegistry never define the same tag twice.
func WithElements(e ElementRegistry) RegistryOption {
	return func(r *MemoryRegistry) {
		r.elements = e
	}
}

// WithRegistryLogger sets the registry logger.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *MemoryRegistry) {
		r.logger = l
	}
}

// NewRegistry creates an empty MemoryRegistry.
func NewRegistry(opts ...RegistryOption) *MemoryRegistry {
	r := &MemoryRegistry{
		tags:       make(map[string]*Scope),
		components: make(map[string]Component),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.elements == nil {
		r.elements = NewCustomElements()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// RegisterTag implements Registry.
func (r *MemoryRegistry) RegisterTag(tag string, s *Scope, c Component, baseName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tags[tag]; exists {
		return false
	}

	def := NewDefinition(tag, baseName, c)
	if s != nil {
		def.BasePath = s.BasePath()
	}
	if err := r.elements.Define(tag, def); err != nil {
		// Defined through another registry sharing the element registry.
		r.logger.Debug("element defined elsewhere", "tag", tag, "error", err)
		return false
	}

	r.tags[tag] = s
	r.components[baseName] = c
	r.logger.Debug("element defined", "tag", tag, "base_name", baseName)
	return true
}

// LookupScope implements Registry.
func (r *MemoryRegistry) LookupScope(tag string) (*Scope, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.tags[strings.ToLower(tag)]
	return s, ok
}

// LookupComponent implements Registry.
func (r *MemoryRegistry) LookupComponent(baseName string) (Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[baseName]
	return c, ok
}

// Definition implements Registry.
func (r *MemoryRegistry) Definition(tag string) (*Definition, bool) {
	return r.elements.Get(strings.ToLower(tag))
}

// AddSuffix implements Registry.
func (r *MemoryRegistry) AddSuffix(suffix string) {
	if suffix == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !slices.Contains(r.suffixes, suffix) {
		r.suffixes = append(r.suffixes, suffix)
	}
}

// Suffixes implements Registry.
func (r *MemoryRegistry) Suffixes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.suffixes)
}

// Tags implements Registry.
func (r *MemoryRegistry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.tags))
	for tag := range r.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Global registry instance and initialization guard.
var (
	defaultRegistry Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, creating it on first use.
func Default() Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// SetDefault installs r as the process-wide registry. It only has an
// effect before the first call to Default.
func SetDefault(r Registry) {
	defaultOnce.Do(func() {
		defaultRegistry = r
	})
}

// ResetDefault discards the process-wide registry. Tests only; not safe
// for concurrent use.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultRegistry = nil
}

// GetScope returns the scope owning tag in the default registry.
func GetScope(tag string) (*Scope, bool) {
	return Default().LookupScope(tag)
}

// GetScopeOf returns the scope owning el's tag in the default registry.
func GetScopeOf(el Element) (*Scope, bool) {
	if el == nil {
		return nil, false
	}
	return GetScope(el.TagName())
}

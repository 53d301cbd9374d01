package scope

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vango-dev/charm/internal/errors"
)

// Definition is the record created for a tag when it is defined. Every
// registration produces a new Definition, so one component registered
// under two tags yields two distinct definitions.
type Definition struct {
	// ID identifies this definition.
	ID uuid.UUID

	// Tag is the defined tag name.
	Tag string

	// BaseName is the component's base name at registration time.
	BaseName string

	// Prefix and Suffix are the parts of Tag around the base name.
	Prefix string
	Suffix string

	// BasePath is the owning scope's base path when the tag was defined.
	BasePath string

	// Component is the registered component.
	Component Component
}

// NewDefinition wraps c for registration under tag, which must have the
// form prefix-baseName[_suffix].
func NewDefinition(tag, baseName string, c Component) *Definition {
	prefix, suffix := splitTag(tag, baseName)
	return &Definition{
		ID:        uuid.New(),
		Tag:       tag,
		BaseName:  baseName,
		Prefix:    prefix,
		Suffix:    suffix,
		Component: c,
	}
}

// splitTag returns the prefix and suffix around baseName in tag. Both are
// empty when tag does not contain baseName in that shape.
func splitTag(tag, baseName string) (prefix, suffix string) {
	if baseName == "" {
		return "", ""
	}
	needle := "-" + baseName
	for from := 0; from < len(tag); {
		i := strings.Index(tag[from:], needle)
		if i < 0 {
			break
		}
		i += from
		rest := tag[i+len(needle):]
		if i > 0 && (rest == "" || strings.HasPrefix(rest, "_")) {
			return tag[:i], strings.TrimPrefix(rest, "_")
		}
		from = i + 1
	}
	return "", ""
}

// ElementRegistry is a write-once registry of element definitions.
type ElementRegistry interface {
	// Define associates tag with def. Defining a tag twice is an error.
	Define(tag string, def *Definition) error

	// Get returns the definition for tag.
	Get(tag string) (*Definition, bool)
}

// CustomElements is an in-memory ElementRegistry.
type CustomElements struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewCustomElements creates an empty CustomElements registry.
func NewCustomElements() *CustomElements {
	return &CustomElements{defs: make(map[string]*Definition)}
}

// Define implements ElementRegistry.
func (c *CustomElements) Define(tag string, def *Definition) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.defs[tag]; exists {
		return errors.New(errors.CodeAlreadyDefined).WithDetail(tag)
	}
	c.defs[tag] = def
	return nil
}

// Get implements ElementRegistry.
func (c *CustomElements) Get(tag string) (*Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.defs[tag]
	return def, ok
}

// Len returns the number of defined tags.
func (c *CustomElements) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.defs)
}

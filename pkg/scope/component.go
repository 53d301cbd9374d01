package scope

// Component is anything that can be registered as an element.
type Component interface {
	// BaseName is the unscoped component name, e.g. "button".
	BaseName() string
}

// Dependent is implemented by components that need other components
// registered with them.
type Dependent interface {
	Dependencies() []Component
}

// Element is anything with a tag name, such as a rendered node.
type Element interface {
	TagName() string
}

// Spec is a plain Component value.
type Spec struct {
	Name string
	Deps []Component
}

// NewSpec returns a Component with the given base name and dependencies.
func NewSpec(name string, deps ...Component) *Spec {
	return &Spec{Name: name, Deps: deps}
}

// BaseName implements Component.
func (s *Spec) BaseName() string { return s.Name }

// Dependencies implements Dependent.
func (s *Spec) Dependencies() []Component { return s.Deps }

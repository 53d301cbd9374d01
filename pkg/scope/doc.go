// Package scope registers components as custom elements under scoped tag
// names.
//
// A tag name is computed from the project prefix, a component's base name
// and an optional scope suffix:
//
//	prefix-baseName[_suffix]    e.g. ch-button, ch-button_app1
//
// Several scopes can register the same component set in one process. They
// share a Registry that maps every tag to the scope that first registered
// it; a tag is never defined twice. Changing a scope's suffix registers
// every component it has seen again under the new names. Earlier tags stay
// defined because element definitions are permanent.
//
// # Usage
//
//	s, err := scope.CreateScope(scope.WithSuffix("app1"))
//	if err != nil {
//	    return err
//	}
//	s.RegisterComponent(Button, Dialog)
//
//	s.TagName("button")           // "ch-button_app1"
//	s.BaseName("ch-button_app1")  // "button"
//	scope.GetScope("ch-button_app1") == s
//
// Components are any value with a base name. A component that needs others
// rendered alongside it lists them in Dependencies; they are registered
// first.
package scope

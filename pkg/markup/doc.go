// Package markup builds and renders small HTML trees whose element tags
// come from a scope.
//
// Tag names produced by a scope are wrapped in Static so they are written
// verbatim; text and attribute values are always escaped.
//
//	s, _ := scope.CreateScope(scope.WithSuffix("app1"))
//	node := markup.El(s.Tag("button"), markup.Attrs{"variant": "primary"},
//	    markup.Text("Save"))
//	html, _ := markup.RenderToString(node)
//	// <ch-button_app1 variant="primary">Save</ch-button_app1>
package markup

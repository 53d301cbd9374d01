package markup

// Static is a string that is trusted and written without escaping.
type Static string

// String returns the underlying string.
func (s Static) String() string { return string(s) }

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <ch-button>, <div>, ...
	KindText                // Escaped text
	KindRaw                 // Raw HTML
)

// Attrs holds element attributes. A true bool renders a bare attribute,
// false and nil values are omitted.
type Attrs map[string]any

// Node is a markup tree node.
type Node struct {
	Kind     Kind
	Tag      Static
	Attrs    Attrs
	Children []*Node
	Text     string
}

// El creates an element node.
func El(tag Static, attrs Attrs, children ...*Node) *Node {
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// Text creates an escaped text node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Raw creates a node written verbatim. Used for icon SVG markup.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// TagName returns the element's tag name.
func (n *Node) TagName() string {
	if n == nil {
		return ""
	}
	return string(n.Tag)
}

// SetAttr sets an attribute, allocating the map if needed.
func (n *Node) SetAttr(key string, value any) {
	if n.Attrs == nil {
		n.Attrs = make(Attrs)
	}
	n.Attrs[key] = value
}

// Attr returns an attribute value.
func (n *Node) Attr(key string) (any, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

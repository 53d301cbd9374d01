package markup

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/charm/internal/errors"
)

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// RenderToString renders a node tree to an HTML string.
func RenderToString(node *Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render streams a node tree to w.
func Render(w io.Writer, node *Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return renderElement(w, node)
	case KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func renderElement(w io.Writer, node *Node) error {
	tag := string(node.Tag)
	if !validTagName(tag) {
		return errors.New(errors.CodeInvalidTagName).WithDetail(fmt.Sprintf("%q", tag))
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := renderAttrs(w, node.Attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if voidElements[strings.ToLower(tag)] {
		return nil
	}

	for _, child := range node.Children {
		if err := Render(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", tag)
	return err
}

func renderAttrs(w io.Writer, attrs Attrs) error {
	if len(attrs) == 0 {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !validTagName(key) {
			return errors.New(errors.CodeInvalidTagName).WithDetail(fmt.Sprintf("attribute %q", key))
		}

		var err error
		switch v := attrs[key].(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			_, err = fmt.Fprintf(w, " %s", key)
		case Static:
			_, err = fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(string(v)))
		case string:
			_, err = fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(v))
		default:
			_, err = fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(fmt.Sprint(v)))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

package markup

import (
	"strings"
	"testing"

	"github.com/vango-dev/charm/internal/errors"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "nil node",
			node: nil,
			want: "",
		},
		{
			name: "custom element with text",
			node: El("ch-button_app1", Attrs{"variant": "primary"}, Text("Save")),
			want: `<ch-button_app1 variant="primary">Save</ch-button_app1>`,
		},
		{
			name: "escaped text and attributes",
			node: El("ch-card", Attrs{"title": `a "b" <c>`}, Text("x < y & z")),
			want: `<ch-card title="a &quot;b&quot; &lt;c&gt;">x &lt; y &amp; z</ch-card>`,
		},
		{
			name: "boolean and omitted attributes",
			node: El("ch-dialog", Attrs{"open": true, "modal": false, "label": nil}),
			want: `<ch-dialog open></ch-dialog>`,
		},
		{
			name: "sorted attributes and numbers",
			node: El("ch-progress", Attrs{"value": 3, "max": 10}),
			want: `<ch-progress max="10" value="3"></ch-progress>`,
		},
		{
			name: "void element",
			node: El("input", Attrs{"type": "text"}),
			want: `<input type="text">`,
		},
		{
			name: "raw svg",
			node: El("ch-icon", nil, Raw(`<svg viewBox="0 0 1 1"></svg>`)),
			want: `<ch-icon><svg viewBox="0 0 1 1"></svg></ch-icon>`,
		},
		{
			name: "nested",
			node: El("ch-tabs", nil, El("ch-tab", nil, Text("One")), El("ch-tab", nil, Text("Two"))),
			want: `<ch-tabs><ch-tab>One</ch-tab><ch-tab>Two</ch-tab></ch-tabs>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("RenderToString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderRejectsBadTags(t *testing.T) {
	for _, tag := range []Static{"", "ch button", "<script>", "9lives"} {
		_, err := RenderToString(El(tag, nil))
		if !errors.HasCode(err, errors.CodeInvalidTagName) {
			t.Errorf("tag %q: err = %v, want C006", tag, err)
		}
	}

	_, err := RenderToString(El("ch-x", Attrs{`on"click`: "x"}))
	if !errors.HasCode(err, errors.CodeInvalidTagName) || !strings.Contains(err.Error(), `attribute "on\"click"`) {
		t.Errorf("bad attribute name: err = %v, want C006", err)
	}
}

func TestNodeAttrs(t *testing.T) {
	n := El("ch-menu", nil)
	n.SetAttr("data-charm-scope", "app1")

	v, ok := n.Attr("data-charm-scope")
	if !ok || v != "app1" {
		t.Errorf("Attr() = %v, %v", v, ok)
	}
	if n.TagName() != "ch-menu" {
		t.Errorf("TagName() = %q", n.TagName())
	}

	var nilNode *Node
	if nilNode.TagName() != "" {
		t.Error("nil node should have an empty tag name")
	}
}

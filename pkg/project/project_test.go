package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/charm/internal/errors"
)

func TestIsToken(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"ch", true},
		{"valid-name_2", true},
		{"@#$", false},
		{"Upper", false},
		{"has space", false},
		{"dot.ted", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsToken(tt.in), "IsToken(%q)", tt.in)
	}
}

func TestNewDefaults(t *testing.T) {
	p := New()
	assert.Equal(t, DefaultPrefix, p.Prefix())

	svg, ok := p.Icon("close")
	assert.True(t, ok)
	assert.Contains(t, svg, "<svg")
}

func TestUpdate(t *testing.T) {
	p := New()

	err := p.Update(Configuration{
		Prefix: "acme",
		Icons:  map[string]string{"close": "<svg>x</svg>", "logo": "<svg>l</svg>"},
	})
	require.NoError(t, err)

	cfg := p.Get()
	assert.Equal(t, "acme", cfg.Prefix)
	assert.Equal(t, "<svg>x</svg>", cfg.Icons["close"])
	assert.Equal(t, "<svg>l</svg>", cfg.Icons["logo"])
	assert.Contains(t, cfg.Icons, "check", "defaults survive the merge")
}

func TestUpdateEmptyPrefixRestoresDefault(t *testing.T) {
	p := New()
	require.NoError(t, p.Update(Configuration{Prefix: "acme"}))
	require.NoError(t, p.Update(Configuration{}))
	assert.Equal(t, DefaultPrefix, p.Prefix())
}

func TestUpdateRejectsInvalidPrefix(t *testing.T) {
	p := New()
	require.NoError(t, p.Update(Configuration{Prefix: "acme"}))

	err := p.Update(Configuration{Prefix: "Acme!"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidPrefix))
	assert.Equal(t, "acme", p.Prefix(), "failed update must not mutate")
}

func TestGetReturnsCopy(t *testing.T) {
	p := New()
	cfg := p.Get()
	cfg.Icons["close"] = "tampered"

	svg, _ := p.Icon("close")
	assert.NotEqual(t, "tampered", svg)
}

func TestPackageLevelProject(t *testing.T) {
	prev := GetProject()
	t.Cleanup(func() { _ = UpdateProject(prev) })

	require.NoError(t, UpdateProject(Configuration{Prefix: "ui"}))
	assert.Equal(t, "ui", GetProject().Prefix)
	assert.Equal(t, "ui", Default().Prefix())
}

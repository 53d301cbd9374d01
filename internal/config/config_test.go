package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/charm/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charm.yaml", `
prefix: acme
suffix: app1
basePath: /static/charm/
components: [button, dialog]
icons:
  dir: icons
  s3:
    bucket: design-assets
    prefix: icons/
  inline:
    logo: <svg>L</svg>
serve:
  port: 9000
log:
  level: debug
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Prefix != "acme" || cfg.Suffix != "app1" {
		t.Errorf("prefix/suffix = %q/%q", cfg.Prefix, cfg.Suffix)
	}
	if len(cfg.Components) != 2 || cfg.Components[1] != "dialog" {
		t.Errorf("Components = %v", cfg.Components)
	}
	if cfg.Icons.S3 == nil || cfg.Icons.S3.Bucket != "design-assets" {
		t.Errorf("Icons.S3 = %+v", cfg.Icons.S3)
	}
	if got, want := cfg.IconDir(), filepath.Join(dir, "icons"); got != want {
		t.Errorf("IconDir() = %q, want %q", got, want)
	}
	if got := cfg.Address(); got != "localhost:9000" {
		t.Errorf("Address() = %q", got)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v", cfg.SlogLevel())
	}

	p := cfg.Project()
	if p.Prefix != "acme" || p.Icons["logo"] != "<svg>L</svg>" {
		t.Errorf("Project() = %+v", p)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charm.json", `{"prefix": "ui", "components": ["tabs"]}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Prefix != "ui" {
		t.Errorf("Prefix = %q", cfg.Prefix)
	}
	if cfg.Path() != filepath.Join(dir, "charm.json") {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir() = %q", cfg.Dir())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
	}{
		{"bad prefix", "charm.yaml", "prefix: ACME\n", errors.CodeInvalidPrefix},
		{"bad suffix", "charm.yaml", "suffix: '@#$'\n", errors.CodeInvalidSuffix},
		{"bad component", "charm.json", `{"components": ["ok", "Not OK"]}`, errors.CodeConfigInvalid},
		{"missing bucket", "charm.yaml", "icons:\n  s3:\n    prefix: x/\n", errors.CodeConfigInvalid},
		{"bad log level", "charm.yaml", "log:\n  level: loud\n", errors.CodeConfigInvalid},
		{"bad port", "charm.json", `{"serve": {"port": 70000}}`, errors.CodeConfigInvalid},
		{"malformed json", "charm.json", `{"prefix": `, errors.CodeConfigParse},
		{"malformed yaml", "charm.yaml", "prefix: [\n", errors.CodeConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)

			_, err := Load(dir)
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.HasCode(err, errors.CodeConfigNotFound) {
		t.Errorf("Load() error = %v, want C010", err)
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "charm.yaml"))
	if !errors.HasCode(err, errors.CodeConfigNotFound) {
		t.Errorf("LoadFile() error = %v, want C010", err)
	}
}

func TestLoadPrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charm.json", `{"prefix": "fromjson"}`)
	writeFile(t, dir, "charm.yaml", "prefix: fromyaml\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prefix != "fromjson" {
		t.Errorf("Prefix = %q, want fromjson", cfg.Prefix)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"charm.json", "charm.yml"} {
		t.Run(name, func(t *testing.T) {
			cfg := New()
			cfg.Prefix = "acme"
			cfg.Components = []string{"button"}
			cfg.Icons.Inline = map[string]string{"logo": "<svg/>"}

			path := filepath.Join(t.TempDir(), name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo() error = %v", err)
			}
			if cfg.Path() != path {
				t.Errorf("Path() = %q", cfg.Path())
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if loaded.Prefix != "acme" || loaded.Icons.Inline["logo"] != "<svg/>" {
				t.Errorf("loaded = %+v", loaded)
			}
		})
	}
}

func TestIconDirAbsolute(t *testing.T) {
	cfg := New()
	if cfg.IconDir() != "" {
		t.Errorf("IconDir() = %q, want empty", cfg.IconDir())
	}
	abs := filepath.Join(t.TempDir(), "icons")
	cfg.Icons.Dir = abs
	if cfg.IconDir() != abs {
		t.Errorf("IconDir() = %q, want %q", cfg.IconDir(), abs)
	}
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	if !errors.HasCode(cfg.Validate(), errors.CodeConfigInvalid) {
		t.Error("nil config should be invalid")
	}
}

package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/charm/internal/errors"
	"github.com/vango-dev/charm/pkg/project"
)

const (
	// DefaultHost is the default inspection server host.
	DefaultHost = "localhost"

	// DefaultPort is the default inspection server port.
	DefaultPort = 7357

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// FileNames are the configuration file names Load looks for, in order.
var FileNames = []string{"charm.json", "charm.yaml", "charm.yml"}

// Config represents a charm project file.
type Config struct {
	// Prefix is the project-wide tag prefix (default: "ch").
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" validate:"charm_token"`

	// Suffix is the suffix of the application's scope.
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty" validate:"charm_token"`

	// BasePath is the base path for component assets.
	BasePath string `json:"basePath,omitempty" yaml:"basePath,omitempty"`

	// Components lists the base names the application registers.
	Components []string `json:"components,omitempty" yaml:"components,omitempty" validate:"dive,required,charm_token"`

	// Icons configures icon overrides.
	Icons IconsConfig `json:"icons,omitempty" yaml:"icons,omitempty"`

	// Serve configures the inspection server.
	Serve ServeConfig `json:"serve,omitempty" yaml:"serve,omitempty"`

	// Log configures logging.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// IconsConfig lists icon override sources. Later sources win: directory,
// then S3, then inline icons.
type IconsConfig struct {
	// Dir is a directory of .svg files, relative to the config file.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// S3 is an S3 location holding .svg objects.
	S3 *S3Config `json:"s3,omitempty" yaml:"s3,omitempty"`

	// Inline maps icon names to SVG markup.
	Inline map[string]string `json:"inline,omitempty" yaml:"inline,omitempty"`
}

// S3Config locates icons in S3.
type S3Config struct {
	Bucket   string `json:"bucket" yaml:"bucket" validate:"required"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" validate:"omitempty,url"`

	// Anonymous skips the AWS credential chain, for public buckets.
	Anonymous bool `json:"anonymous,omitempty" yaml:"anonymous,omitempty"`
}

// ServeConfig configures the inspection server.
type ServeConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty" validate:"min=0,max=65535"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the first configuration file found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New(errors.CodeConfigNotFound).
		WithDetail("No charm.json or charm.yaml found in " + dir).
		WithSuggestion("Create charm.yaml with at least a prefix, or pass --config")
}

// LoadFile reads configuration from the specified file path. The format
// follows the extension: .yaml and .yml are YAML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail(path + " does not exist")
		}
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to path in the format its extension names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New(errors.CodeConfigParse).Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigParse).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// IconDir returns the icon directory resolved against the config directory.
func (c *Config) IconDir() string {
	if c.Icons.Dir == "" || filepath.IsAbs(c.Icons.Dir) {
		return c.Icons.Dir
	}
	return filepath.Join(c.Dir(), c.Icons.Dir)
}

// Project returns the project configuration described by c.
func (c *Config) Project() project.Configuration {
	return project.Configuration{
		Prefix: c.Prefix,
		Icons:  c.Icons.Inline,
	}
}

// Address returns the inspection server address.
func (c *Config) Address() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

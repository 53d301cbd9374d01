package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/charm/internal/config"
	"github.com/vango-dev/charm/internal/errors"
	"github.com/vango-dev/charm/pkg/icons"
	"github.com/vango-dev/charm/pkg/project"
	"github.com/vango-dev/charm/pkg/scope"
)

// app is the state shared by commands once configuration is loaded.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	project  *project.Project
	registry *scope.MemoryRegistry
}

// loadConfig reads the configuration named by flags. A missing file in
// --dir yields defaults when required is false.
func loadConfig(flags *globalFlags, required bool) (*config.Config, error) {
	if flags.config != "" {
		return config.LoadFile(flags.config)
	}
	cfg, err := config.Load(flags.dir)
	if err != nil {
		if !required && errors.HasCode(err, errors.CodeConfigNotFound) {
			return config.New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// newApp loads configuration, icon sources and the project.
func newApp(ctx context.Context, flags *globalFlags, required bool) (*app, error) {
	cfg, err := loadConfig(flags, required)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := newLogger(cfg)

	sources, err := iconSources(ctx, cfg)
	if err != nil {
		return nil, err
	}
	overrides, err := icons.LoadAll(ctx, sources...)
	if err != nil {
		return nil, err
	}

	pc := cfg.Project()
	pc.Icons = icons.Merge(overrides, pc.Icons)

	p := project.New()
	if err := p.Update(pc); err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		project:  p,
		registry: scope.NewRegistry(scope.WithRegistryLogger(logger)),
	}, nil
}

// newScope creates the application scope described by the configuration.
func (a *app) newScope(opts ...scope.Option) (*scope.Scope, error) {
	components := make([]scope.Component, 0, len(a.cfg.Components))
	for _, name := range a.cfg.Components {
		components = append(components, scope.NewSpec(name))
	}

	base := []scope.Option{
		scope.WithRegistry(a.registry),
		scope.WithProject(a.project),
		scope.WithLogger(a.logger),
		scope.WithBasePath(a.cfg.BasePath),
		scope.WithSuffix(a.cfg.Suffix),
		scope.WithComponents(components...),
	}
	return scope.CreateScope(append(base, opts...)...)
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func iconSources(ctx context.Context, cfg *config.Config) ([]icons.Source, error) {
	var sources []icons.Source
	if dir := cfg.IconDir(); dir != "" {
		sources = append(sources, icons.NewDirSource(dir))
	}
	if s3cfg := cfg.Icons.S3; s3cfg != nil {
		client, err := newS3Client(ctx, s3cfg)
		if err != nil {
			return nil, err
		}
		sources = append(sources, icons.NewS3Source(client, s3cfg.Bucket, s3cfg.Prefix))
	}
	return sources, nil
}

// newS3Client builds a client from the default AWS configuration chain.
// A configured region or endpoint takes precedence over it.
func newS3Client(ctx context.Context, cfg *config.S3Config) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Anonymous {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New(errors.CodeIconSource).
			WithDetail("loading AWS configuration").
			Wrap(err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// displayPath shortens path relative to the working directory.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}

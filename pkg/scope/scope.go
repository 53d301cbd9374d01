package scope

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/charm/internal/errors"
	"github.com/vango-dev/charm/pkg/markup"
	"github.com/vango-dev/charm/pkg/project"
)

// RootAttr marks the root element a scope is attached to.
const RootAttr = "data-charm-scope"

const tracerName = "github.com/vango-dev/charm/pkg/scope"

// Scope computes tag names from the project prefix and its own suffix and
// registers components under them.
type Scope struct {
	registry Registry
	project  *project.Project
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer

	mu         sync.Mutex
	suffix     string
	used       []string // every non-empty suffix this scope has had
	basePath   string
	root       *markup.Node
	components []Component // registration order, one per base name
}

type options struct {
	suffix     *string
	basePath   *string
	components []Component

	registry Registry
	project  *project.Project
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
}

// Option configures a Scope. WithSuffix, WithBasePath and WithComponents
// apply to CreateScope and UpdateOptions; the remaining options are only
// read by CreateScope.
type Option func(*options)

// WithSuffix sets the tag-name suffix.
func WithSuffix(suffix string) Option {
	return func(o *options) {
		o.suffix = &suffix
	}
}

// WithBasePath sets the base path used by MakePath.
func WithBasePath(path string) Option {
	return func(o *options) {
		o.basePath = &path
	}
}

// WithComponents registers components.
func WithComponents(components ...Component) Option {
	return func(o *options) {
		o.components = append(o.components, components...)
	}
}

// WithRegistry sets the shared registry (default: Default()).
func WithRegistry(r Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithProject sets the project consulted for the prefix (default: project.Default()).
func WithProject(p *project.Project) Option {
	return func(o *options) {
		o.project = p
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records registrations in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracer sets the tracer used for registration spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// CreateScope creates a scope and applies opts as UpdateOptions would.
// Every call returns a new, independent scope; scopes share state only
// through their registry.
func CreateScope(opts ...Option) (*Scope, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scope{
		registry: o.registry,
		project:  o.project,
		logger:   o.logger,
		metrics:  o.metrics,
		tracer:   o.tracer,
	}
	if s.registry == nil {
		s.registry = Default()
	}
	if s.project == nil {
		s.project = project.Default()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	if err := s.update(context.Background(), &o); err != nil {
		return nil, err
	}
	return s, nil
}

// Prefix returns the active project prefix.
func (s *Scope) Prefix() string {
	return s.project.Prefix()
}

// Suffix returns the current suffix.
func (s *Scope) Suffix() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suffix
}

// BasePath returns the current base path.
func (s *Scope) BasePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basePath
}

// Registry returns the registry the scope registers into.
func (s *Scope) Registry() Registry {
	return s.registry
}

// Components returns the components the scope has been asked to register.
func (s *Scope) Components() []Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.components)
}

// UpdateOptions applies suffix, base path and component options.
//
// A changed suffix is validated before anything is modified; on success
// every component seen so far is registered again under the new tag
// names. Tags defined under the previous suffix stay registered.
func (s *Scope) UpdateOptions(opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return s.update(context.Background(), &o)
}

func (s *Scope) update(ctx context.Context, o *options) error {
	s.mu.Lock()

	changed := o.suffix != nil && *o.suffix != s.suffix
	if changed && !project.IsToken(*o.suffix) {
		s.mu.Unlock()
		return errors.New(errors.CodeInvalidSuffix).
			WithDetail(fmt.Sprintf("suffix %q contains characters outside [a-z0-9_-]", *o.suffix)).
			WithSuggestion("Use lowercase letters, digits, '-' or '_'")
	}

	if o.basePath != nil {
		s.basePath = *o.basePath
	}

	var replay []Component
	if changed {
		s.suffix = *o.suffix
		if s.suffix != "" && !slices.Contains(s.used, s.suffix) {
			s.used = append(s.used, s.suffix)
		}
		s.markRoot()
		replay = slices.Clone(s.components)
	}
	suffix := s.suffix
	s.mu.Unlock()

	if changed {
		s.registry.AddSuffix(suffix)
		s.metrics.suffixChanged()
		s.logger.Debug("scope suffix changed", "suffix", suffix, "replay", len(replay))
		s.RegisterComponentContext(ctx, replay...)
	}

	if len(o.components) > 0 {
		s.RegisterComponentContext(ctx, o.components...)
	}
	return nil
}

// TagName returns the scoped tag name for baseName:
// prefix-baseName, followed by _suffix when the scope has one.
//
// A base name that already starts with "prefix-" is a caller mistake; the
// prefix is stripped and an error is logged. An empty base name is logged
// too.
func (s *Scope) TagName(baseName string) string {
	s.mu.Lock()
	suffix := s.suffix
	s.mu.Unlock()

	prefix := s.Prefix()
	baseName = s.normalize(prefix, baseName)
	if baseName == "" {
		s.logger.Error("tag name requested for an empty base name",
			"code", errors.CodeMissingBaseName,
			"prefix", prefix)
	}
	return joinTag(prefix, baseName, suffix)
}

// normalize lowercases baseName and strips a leading "prefix-".
func (s *Scope) normalize(prefix, baseName string) string {
	baseName = strings.ToLower(baseName)
	if strings.HasPrefix(baseName, prefix+"-") {
		s.logger.Error("base name already carries the prefix",
			"code", errors.CodePrefixedBaseName,
			"base_name", baseName,
			"prefix", prefix)
		baseName = strings.TrimPrefix(baseName, prefix+"-")
	}
	return baseName
}

func joinTag(prefix, baseName, suffix string) string {
	tag := prefix + "-" + baseName
	if suffix != "" {
		tag += "_" + suffix
	}
	return tag
}

// Tag returns TagName(baseName) as a static markup string.
func (s *Scope) Tag(baseName string) markup.Static {
	return markup.Static(s.TagName(baseName))
}

// RegisterComponent registers components under their scoped tag names.
// See RegisterComponentContext.
func (s *Scope) RegisterComponent(components ...Component) {
	s.RegisterComponentContext(context.Background(), components...)
}

// RegisterComponentContext registers each component, and its dependencies
// first, under its scoped tag name.
//
// Components without a base name are logged and skipped. Every other
// component is remembered for suffix changes, even when its tag was
// already registered by this or another scope.
func (s *Scope) RegisterComponentContext(ctx context.Context, components ...Component) {
	if len(components) == 0 {
		return
	}

	_, span := s.tracer.Start(ctx, "charm.scope.register",
		trace.WithAttributes(
			attribute.String("charm.prefix", s.Prefix()),
			attribute.String("charm.suffix", s.Suffix()),
			attribute.Int("charm.components", len(components)),
		),
	)
	defer span.End()

	visiting := make(map[string]bool)
	for _, c := range components {
		s.register(span, c, visiting)
	}
}

func (s *Scope) register(span trace.Span, c Component, visiting map[string]bool) {
	if c == nil {
		return
	}

	baseName := c.BaseName()
	if baseName == "" {
		s.logger.Error("component has no base name; skipping registration",
			"code", errors.CodeMissingBaseName,
			"component", fmt.Sprintf("%T", c))
		s.metrics.registration(resultInvalid)
		return
	}
	if visiting[baseName] {
		return
	}
	visiting[baseName] = true

	if d, ok := c.(Dependent); ok {
		for _, dep := range d.Dependencies() {
			s.register(span, dep, visiting)
		}
	}

	s.mu.Lock()
	if !slices.ContainsFunc(s.components, func(known Component) bool {
		return known.BaseName() == baseName
	}) {
		s.components = append(s.components, c)
	}
	suffix := s.suffix
	s.mu.Unlock()

	prefix := s.Prefix()
	name := s.normalize(prefix, baseName)
	tag := joinTag(prefix, name, suffix)
	if !s.registry.RegisterTag(tag, s, c, name) {
		s.metrics.registration(resultSkipped)
		return
	}

	s.metrics.registration(resultDefined)
	span.AddEvent("define", trace.WithAttributes(attribute.String("charm.tag", tag)))
}

// BaseName recovers the base name from a tag name. A registered tag
// yields the base name it was defined with. Otherwise the prefix and a
// trailing _suffix this scope has used are removed.
func (s *Scope) BaseName(tag string) string {
	if def, ok := s.registry.Definition(tag); ok && def.BaseName != "" {
		return def.BaseName
	}

	name := strings.ToLower(tag)
	name = strings.TrimPrefix(name, s.Prefix()+"-")

	s.mu.Lock()
	suffixes := slices.Clone(s.used)
	s.mu.Unlock()
	// Longest first so "_app10" is not cut as "_app1" + "0".
	slices.SortFunc(suffixes, func(a, b string) int { return len(b) - len(a) })

	for _, suffix := range suffixes {
		if trimmed, ok := strings.CutSuffix(name, "_"+suffix); ok && trimmed != "" {
			return trimmed
		}
	}
	return name
}

// BaseNameOf is BaseName for an element.
func (s *Scope) BaseNameOf(el Element) string {
	if el == nil {
		return ""
	}
	return s.BaseName(el.TagName())
}

// MakePath joins the base path and path. It returns the base path as is
// when path is empty.
func (s *Scope) MakePath(path string) string {
	base := s.BasePath()
	if path == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Attach marks root as the root element of this scope.
func (s *Scope) Attach(root *markup.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
	s.markRoot()
}

// markRoot requires s.mu.
func (s *Scope) markRoot() {
	if s.root == nil {
		return
	}
	if s.suffix == "" {
		s.root.SetAttr(RootAttr, true)
		return
	}
	s.root.SetAttr(RootAttr, s.suffix)
}

// Element builds a node for baseName under this scope's tag name.
func (s *Scope) Element(baseName string, attrs markup.Attrs, children ...*markup.Node) *markup.Node {
	return markup.El(s.Tag(baseName), attrs, children...)
}

// Icon builds an icon element carrying the project's SVG for name. Unknown
// names render an empty icon element.
func (s *Scope) Icon(name string) *markup.Node {
	node := s.Element("icon", markup.Attrs{"name": name})
	if svg, ok := s.project.Icon(name); ok {
		node.Children = append(node.Children, markup.Raw(svg))
	}
	return node
}

// LookupComponent returns the component registered under baseName.
func (s *Scope) LookupComponent(baseName string) (Component, bool) {
	return s.registry.LookupComponent(baseName)
}

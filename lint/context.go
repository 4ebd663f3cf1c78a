package lint

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/scope"
)

// Phase is the state of a rule run.
type Phase int

const (
	// PhaseInit covers option validation and visitor creation.
	PhaseInit Phase = iota
	// PhaseTraversing is the tree walk, the only phase that accepts reports.
	PhaseTraversing
	// PhaseDone follows the walk. Per-run state has been released.
	PhaseDone
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseTraversing:
		return "traversing"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Descriptor is what a rule reports.
type Descriptor struct {
	// MessageID selects the template from the rule's Meta.Messages.
	MessageID string
	// Node locates the diagnostic.
	Node estree.Node
	// Data fills the template's {{name}} placeholders.
	Data map[string]interface{}
	Fix  *Fix
}

// Context is the state of one rule run over one file. It is created by
// RunRule and must not be retained after the run.
type Context struct {
	rule     Rule
	meta     Meta
	file     *File
	source   *estree.SourceCode
	options  interface{}
	settings Settings
	severity Severity
	logger   *slog.Logger

	resolver  *scope.Resolver
	collector *astutil.Collector
	cache     map[string]interface{}
	sink      *Sink

	phase   Phase
	current estree.Node
	err     error
}

func newContext(rule Rule, file *File, table *scope.Table, options interface{}, opts *runOptions) *Context {
	source := file.source()
	return &Context{
		rule:      rule,
		meta:      rule.Meta(),
		file:      file,
		source:    source,
		options:   options,
		settings:  opts.settings,
		severity:  opts.severity,
		logger:    opts.logger,
		resolver:  scope.NewResolver(table, source),
		collector: astutil.NewCollector(),
		cache:     make(map[string]interface{}),
		sink:      &Sink{},
		phase:     PhaseInit,
	}
}

// RuleName returns the name of the running rule.
func (c *Context) RuleName() string { return c.rule.Name() }

// Filename returns the name of the linted file.
func (c *Context) Filename() string { return c.file.Name }

// Program returns the root of the linted tree.
func (c *Context) Program() *estree.Program { return c.file.Program }

// Source returns the file's source text.
func (c *Context) Source() *estree.SourceCode { return c.source }

// Options returns the normalized options of the run.
func (c *Context) Options() interface{} { return c.options }

// Settings returns the shared settings.
func (c *Context) Settings() Settings { return c.settings }

// Resolver answers scope questions about the file.
func (c *Context) Resolver() *scope.Resolver { return c.resolver }

// Collector returns the run's memoizing collector. It is discarded when the
// run ends.
func (c *Context) Collector() *astutil.Collector { return c.collector }

// Logger returns the run's logger, which may be nil.
func (c *Context) Logger() *slog.Logger { return c.logger }

// Phase returns the current phase of the run.
func (c *Context) Phase() Phase { return c.phase }

// Current returns the node whose visitors are running, or nil outside the
// traversal.
func (c *Context) Current() estree.Node { return c.current }

// Ancestors returns the ancestors of the current node, root first.
func (c *Context) Ancestors() []estree.Node {
	if c.current == nil {
		return nil
	}
	return astutil.Ancestors(c.current)
}

// GetCache retrieves a cached value by key.
// Returns nil if the key doesn't exist.
func (c *Context) GetCache(key string) interface{} {
	return c.cache[key]
}

// SetCache stores a value in the run's cache. The cache belongs to this run
// alone and is dropped when it ends.
func (c *Context) SetCache(key string, value interface{}) {
	if c.cache != nil {
		c.cache[key] = value
	}
}

// Err returns the configuration error that stopped the run, if any.
func (c *Context) Err() error { return c.err }

// Report records a diagnostic. A message id missing from the rule's catalog
// is a configuration error: nothing is recorded and the run stops after the
// current callback.
func (c *Context) Report(d Descriptor) {
	if c.err != nil {
		return
	}
	if c.phase != PhaseTraversing {
		c.fail(errors.Newf(errors.CodeInvalidConfig, "report of %s outside the traversal (phase %s)", d.MessageID, c.phase))
		return
	}
	tmpl, ok := c.meta.Messages[d.MessageID]
	if !ok {
		c.fail(errors.New(errors.CodeInvalidConfig, "unknown message id").
			WithContext("messageId", d.MessageID))
		return
	}
	if estree.IsNil(d.Node) {
		c.fail(errors.Newf(errors.CodeInvalidConfig, "report of %s without a node", d.MessageID))
		return
	}

	diag := Diagnostic{
		Rule:      c.rule.Name(),
		MessageID: d.MessageID,
		Message:   Interpolate(tmpl, d.Data),
		Severity:  c.severity,
		File:      c.file.Name,
		Range:     d.Node.Range(),
		Location:  d.Node.Loc(),
		Node:      d.Node,
	}
	if d.Fix != nil {
		fix := *d.Fix
		diag.Fix = &fix
	}
	for k, v := range d.Data {
		diag = diag.WithContext(k, v)
	}
	c.sink.Add(diag)
}

func (c *Context) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

var placeholder = regexp.MustCompile(`\{\{\s*([^{}\s]+)\s*\}\}`)

// Interpolate replaces {{name}} placeholders in tmpl with values from data.
// Placeholders without a value are kept verbatim.
func Interpolate(tmpl string, data map[string]interface{}) string {
	if len(data) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := data[name]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}

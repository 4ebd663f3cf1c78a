package lint

import (
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
)

// Kind classifies what a rule guards against.
type Kind string

const (
	// KindProblem rules find code that is likely broken.
	KindProblem Kind = "problem"
	// KindSuggestion rules find code that could be written better.
	KindSuggestion Kind = "suggestion"
)

// Meta describes a rule.
type Meta struct {
	// Description is a one-line summary of what the rule checks.
	Description string
	Kind        Kind
	// Messages maps message ids to templates. Templates reference report data
	// as {{name}}.
	Messages map[string]string
	// Requires is an optional semver constraint on the React version in
	// Settings. The rule is skipped when the constraint is not met.
	Requires string
	// Fixable reports whether the rule attaches fixes to its diagnostics.
	Fixable bool
}

// Visitor is a callback invoked with a node matching its selector.
type Visitor func(n estree.Node)

// Visitors maps selectors to callbacks. A selector is a node type or "*",
// optionally followed by attribute filters such as [operator="&&"], joined by
// the child (">") or descendant (whitespace) combinators and suffixed with
// ":exit" to fire after the node's subtree. Comma-separated selectors share
// one callback.
type Visitors map[string]Visitor

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// Name returns the rule's unique identifier, such as
	// "jsx/no-missing-key".
	Name() string

	// Meta returns the rule's description and message catalog.
	Meta() Meta

	// Schema returns the option schema, or nil for rules without options.
	Schema() *Schema

	// Create returns the visitors for one run. It is called once per file at
	// the start of the run with that run's context.
	Create(c *Context) Visitors
}

// CreateFunc builds the visitors of one rule run.
type CreateFunc func(c *Context) Visitors

// Define creates a rule from its parts.
//
//nolint:ireturn // Builder functions should return interfaces
func Define(name string, meta Meta, schema *Schema, create CreateFunc) Rule {
	return &definedRule{name: name, meta: meta, schema: schema, create: create}
}

type definedRule struct {
	name   string
	meta   Meta
	schema *Schema
	create CreateFunc
}

func (r *definedRule) Name() string               { return r.name }
func (r *definedRule) Meta() Meta                 { return r.meta }
func (r *definedRule) Schema() *Schema            { return r.schema }
func (r *definedRule) Create(c *Context) Visitors { return r.create(c) }

var (
	ruleNamePattern  = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*(/[a-z][a-z0-9]*(-[a-z0-9]+)*)?$`)
	messageIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// ValidateRule checks a rule's declaration: a kebab-case name with an
// optional "plugin/" prefix, at least one message with a non-empty template,
// and a parseable React version constraint.
func ValidateRule(r Rule) error {
	if r == nil {
		return errors.New(errors.CodeInvalidConfig, "rule must not be nil")
	}
	name := r.Name()
	if !ruleNamePattern.MatchString(name) {
		return errors.Newf(errors.CodeInvalidConfig, "invalid rule name %q", name)
	}
	meta := r.Meta()
	if len(meta.Messages) == 0 {
		return errors.Newf(errors.CodeInvalidConfig, "rule %s declares no messages", name)
	}
	for id, tmpl := range meta.Messages {
		if !messageIDPattern.MatchString(id) {
			return errors.Newf(errors.CodeInvalidConfig, "rule %s: invalid message id %q", name, id)
		}
		if tmpl == "" {
			return errors.Newf(errors.CodeInvalidConfig, "rule %s: message %s has an empty template", name, id)
		}
	}
	if meta.Requires != "" {
		if _, err := semver.NewConstraint(meta.Requires); err != nil {
			return errors.Wrap(err, errors.CodeInvalidConfig, "rule "+name+": invalid version constraint")
		}
	}
	return nil
}

package jsx

import (
	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

// NoMissingKeyRule reports elements rendered from an array literal or a
// `.map()` callback without a key attribute.
type NoMissingKeyRule struct{}

// NewNoMissingKeyRule creates the rule.
func NewNoMissingKeyRule() *NoMissingKeyRule {
	return &NoMissingKeyRule{}
}

// Name returns the unique identifier for this rule.
func (r *NoMissingKeyRule) Name() string {
	return "jsx/no-missing-key"
}

// Meta describes the rule and its messages.
func (r *NoMissingKeyRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "require key when rendering list",
		Kind:        lint.KindProblem,
		Messages: map[string]string{
			"NO_MISSING_KEY":               "Missing 'key' prop for element in {{context}}.",
			"NO_MISSING_KEY_WITH_FRAGMENT": "Use fragment component instead of '<>' because it does not support key prop.",
		},
	}
}

// Schema returns nil; the rule has no options.
func (r *NoMissingKeyRule) Schema() *lint.Schema { return nil }

// Create returns the visitors for one run.
func (r *NoMissingKeyRule) Create(c *lint.Context) lint.Visitors {
	check := func(n estree.Node, where string) {
		switch el := n.(type) {
		case *estree.JSXElement:
			if !astutil.HasAttribute(el, "key") {
				c.Report(lint.Descriptor{
					MessageID: "NO_MISSING_KEY",
					Node:      el,
					Data:      map[string]interface{}{"context": where},
				})
			}
		case *estree.JSXFragment:
			c.Report(lint.Descriptor{MessageID: "NO_MISSING_KEY_WITH_FRAGMENT", Node: el})
		}
	}

	return lint.Visitors{
		"ArrayExpression": func(n estree.Node) {
			for _, el := range n.(*estree.ArrayExpression).Elements {
				check(el, "array")
			}
		},
		"CallExpression": func(n estree.Node) {
			if !astutil.IsMapCall(n) {
				return
			}
			call := n.(*estree.CallExpression)
			if len(call.Arguments) == 0 || !astutil.IsFunction(call.Arguments[0]) {
				return
			}
			for _, rendered := range renderedBy(call.Arguments[0], c.Collector()) {
				check(rendered, "iterator")
			}
		},
	}
}

// renderedBy returns the JSX a callback can return, looking through
// conditional and logical expressions.
func renderedBy(fn estree.Node, collector *astutil.Collector) []estree.Node {
	var exprs []estree.Node
	if arrow, ok := fn.(*estree.ArrowFunctionExpression); ok && !astutil.Is(arrow.Body, estree.TypeBlockStatement) {
		exprs = append(exprs, arrow.Body)
	} else {
		body, _ := estree.Field(fn, "body")
		node, _ := body.(estree.Node)
		for _, ret := range collector.NestedReturnStatements(node) {
			if enclosingFunction(ret) == fn {
				exprs = append(exprs, ret.Argument)
			}
		}
	}

	var out []estree.Node
	var visit func(n estree.Node)
	visit = func(n estree.Node) {
		switch n := n.(type) {
		case *estree.JSXElement, *estree.JSXFragment:
			out = append(out, n)
		case *estree.ConditionalExpression:
			visit(n.Consequent)
			visit(n.Alternate)
		case *estree.LogicalExpression:
			visit(n.Right)
		}
	}
	for _, e := range exprs {
		visit(e)
	}
	return out
}

// enclosingFunction returns the nearest function around n.
func enclosingFunction(n estree.Node) estree.Node {
	return astutil.WalkUpUntil(n, astutil.IsFunction)
}

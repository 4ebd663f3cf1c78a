// Package jsx provides rules that check how JSX is written: conditional
// rendering, keys in lists, text nodes and attribute syntax.
package jsx

import (
	"slices"

	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

const (
	// StrategyTernary allows `cond ? <A /> : null`.
	StrategyTernary = "ternary"
	// StrategyCoerce allows `!!cond && <A />`.
	StrategyCoerce = "coerce"
)

// LeakedRenderingOptions configures NoLeakedConditionalRenderingRule.
type LeakedRenderingOptions struct {
	ValidStrategies []string `json:"validStrategies"`
}

func (o LeakedRenderingOptions) allows(strategy string) bool {
	return slices.Contains(o.ValidStrategies, strategy)
}

// coercedLeftSides are the && left-hand sides that always produce a
// non-renderable value.
var coercedLeftSides = []estree.Type{
	estree.TypeUnaryExpression,
	estree.TypeBinaryExpression,
	estree.TypeCallExpression,
}

// NoLeakedConditionalRenderingRule reports conditional rendering that can put
// a stray value such as 0 or NaN into the output.
type NoLeakedConditionalRenderingRule struct{}

// NewNoLeakedConditionalRenderingRule creates the rule.
func NewNoLeakedConditionalRenderingRule() *NoLeakedConditionalRenderingRule {
	return &NoLeakedConditionalRenderingRule{}
}

// Name returns the unique identifier for this rule.
func (r *NoLeakedConditionalRenderingRule) Name() string {
	return "jsx/no-leaked-conditional-rendering"
}

// Meta describes the rule and its message.
func (r *NoLeakedConditionalRenderingRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "disallow problematic leaked values from being rendered",
		Kind:        lint.KindProblem,
		Messages: map[string]string{
			"NO_LEAKED_CONDITIONAL_RENDERING": "Potential leaked value that might cause unintentionally rendered values or rendering crashes.",
		},
		Fixable: true,
	}
}

// Schema accepts {validStrategies: [...]} with both strategies by default.
func (r *NoLeakedConditionalRenderingRule) Schema() *lint.Schema {
	return &lint.Schema{
		CUE:       `close({validStrategies: *["ternary", "coerce"] | [...("ternary" | "coerce")]})`,
		Normalize: lint.DecodeInto[LeakedRenderingOptions](),
	}
}

// Create returns the visitors for one run.
func (r *NoLeakedConditionalRenderingRule) Create(c *lint.Context) lint.Visitors {
	opts := lint.OptionsAs[LeakedRenderingOptions](c)

	return lint.Visitors{
		"JSXExpressionContainer > ConditionalExpression": func(n estree.Node) {
			if opts.allows(StrategyTernary) {
				return
			}
			cond := n.(*estree.ConditionalExpression)
			if isLeakyAlternate(cond.Alternate) {
				c.Report(lint.Descriptor{MessageID: "NO_LEAKED_CONDITIONAL_RENDERING", Node: cond.Alternate})
			}
		},
		`JSXExpressionContainer > LogicalExpression[operator="&&"]`: func(n estree.Node) {
			logical := n.(*estree.LogicalExpression)
			left := logical.Left
			if opts.allows(StrategyCoerce) && isCoerced(left) {
				return
			}
			if astutil.IsLiteralWithValue(left, "") {
				return
			}
			c.Report(lint.Descriptor{
				MessageID: "NO_LEAKED_CONDITIONAL_RENDERING",
				Node:      left,
				Fix:       r.fix(c, logical, opts),
			})
		},
	}
}

// fix rewrites `a && <A />` in the first allowed strategy.
func (r *NoLeakedConditionalRenderingRule) fix(c *lint.Context, n *estree.LogicalExpression, opts LeakedRenderingOptions) *lint.Fix {
	left, right := c.Source().GetText(n.Left), c.Source().GetText(n.Right)
	switch {
	case opts.allows(StrategyCoerce):
		return &lint.Fix{Description: "coerce the condition to a boolean", Range: n.Range(), Text: "!!" + wrap(n.Left, left) + " && " + right}
	case opts.allows(StrategyTernary):
		return &lint.Fix{Description: "render null when the condition fails", Range: n.Range(), Text: left + " ? " + right + " : null"}
	}
	return nil
}

func wrap(n estree.Node, text string) string {
	if astutil.IsOneOf(n, estree.TypeIdentifier, estree.TypeMemberExpression, estree.TypeLiteral) {
		return text
	}
	return "(" + text + ")"
}

// isCoerced reports whether the && left side is a boolean-producing
// expression or a logical combination of them.
func isCoerced(n estree.Node) bool {
	if logical, ok := n.(*estree.LogicalExpression); ok {
		return isCoerced(logical.Left) && isCoerced(logical.Right)
	}
	return astutil.IsOneOf(n, coercedLeftSides...)
}

// isLeakyAlternate reports whether a ternary alternate renders something that
// the coerce strategy would express as `cond && <A />`.
func isLeakyAlternate(n estree.Node) bool {
	return astutil.Is(n, estree.TypeJSXElement) ||
		astutil.IsNullLiteral(n) ||
		astutil.IsLiteralWithValue(n, false)
}

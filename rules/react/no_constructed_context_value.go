package react

import (
	"strings"

	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

// NoConstructedContextValueRule reports context providers inside function
// components whose value is built during render, so every render hands
// consumers a new value.
type NoConstructedContextValueRule struct{}

// NewNoConstructedContextValueRule creates the rule.
func NewNoConstructedContextValueRule() *NoConstructedContextValueRule {
	return &NoConstructedContextValueRule{}
}

// Name returns the unique identifier for this rule.
func (r *NoConstructedContextValueRule) Name() string {
	return "react/no-constructed-context-value"
}

// Meta describes the rule and its message.
func (r *NoConstructedContextValueRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "disallow passing constructed values to context providers",
		Kind:        lint.KindProblem,
		Messages: map[string]string{
			"NO_CONSTRUCTED_CONTEXT_VALUE": "The {{type}} passed as the value prop to the context provider should not be constructed. It will change on every render.",
		},
	}
}

// Schema returns nil; the rule has no options.
func (r *NoConstructedContextValueRule) Schema() *lint.Schema { return nil }

// Create returns the visitors for one run.
func (r *NoConstructedContextValueRule) Create(c *lint.Context) lint.Visitors {
	return lint.Visitors{
		"JSXOpeningElement": func(n estree.Node) {
			opening := n.(*estree.JSXOpeningElement)
			if !strings.HasSuffix(astutil.JSXElementName(opening.Name), ".Provider") {
				return
			}
			attr := astutil.FindAttribute(opening, "value")
			if attr == nil {
				return
			}
			container, ok := attr.Value.(*estree.JSXExpressionContainer)
			if !ok {
				return
			}
			component := astutil.FunctionAncestor(opening)
			if component == nil || !astutil.IsFunctionComponent(component, c.Collector()) {
				return
			}

			value := container.Expression
			if id, ok := value.(*estree.Identifier); ok {
				if !c.Resolver().IsBoundInScope(component, id.Name) {
					return
				}
				value = c.Resolver().Initializer(id)
			}
			if kind := constructedKind(value); kind != "" {
				c.Report(lint.Descriptor{
					MessageID: "NO_CONSTRUCTED_CONTEXT_VALUE",
					Node:      container.Expression,
					Data:      map[string]interface{}{"type": kind},
				})
			}
		},
	}
}

// constructedKind names the kind of value n constructs on evaluation, or
// returns "" when it does not construct one.
func constructedKind(n estree.Node) string {
	switch n := n.(type) {
	case *estree.ObjectExpression:
		return "object"
	case *estree.ArrayExpression:
		return "array"
	case *estree.ArrowFunctionExpression, *estree.FunctionExpression:
		return "function"
	case *estree.ClassExpression:
		return "class"
	case *estree.NewExpression:
		return "new expression"
	case *estree.JSXElement, *estree.JSXFragment:
		return "JSX element"
	case *estree.ConditionalExpression:
		if kind := constructedKind(n.Consequent); kind != "" {
			return kind
		}
		return constructedKind(n.Alternate)
	case *estree.LogicalExpression:
		if kind := constructedKind(n.Left); kind != "" {
			return kind
		}
		return constructedKind(n.Right)
	case *estree.AssignmentExpression:
		return constructedKind(n.Right)
	}
	return ""
}

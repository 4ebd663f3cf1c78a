// Package react provides rules for React component APIs: element creation,
// fragments, class lifecycles and context providers.
package react

import (
	"slices"
	"strings"

	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
	"github.com/input-output-hk/jsxlint/pattern"
)

// unsafeSandboxCombinations are sandbox token sets that together remove the
// sandbox.
var unsafeSandboxCombinations = [][]string{
	{"allow-scripts", "allow-same-origin"},
}

var iframeTag = pattern.Of(estree.TypeLiteral, pattern.Fields{"value": "iframe"})

// NoUnsafeIframeSandboxRule reports iframes whose sandbox attribute combines
// tokens that let the framed document escape the sandbox.
type NoUnsafeIframeSandboxRule struct{}

// NewNoUnsafeIframeSandboxRule creates the rule.
func NewNoUnsafeIframeSandboxRule() *NoUnsafeIframeSandboxRule {
	return &NoUnsafeIframeSandboxRule{}
}

// Name returns the unique identifier for this rule.
func (r *NoUnsafeIframeSandboxRule) Name() string {
	return "react/no-unsafe-iframe-sandbox"
}

// Meta describes the rule and its message.
func (r *NoUnsafeIframeSandboxRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "disallow unsafe iframe sandbox attribute combinations",
		Kind:        lint.KindProblem,
		Messages: map[string]string{
			"NO_UNSAFE_IFRAME_SANDBOX": "Unsafe iframe sandbox attribute combination.",
		},
	}
}

// Schema returns nil; the rule has no options.
func (r *NoUnsafeIframeSandboxRule) Schema() *lint.Schema { return nil }

// Create returns the visitors for one run.
func (r *NoUnsafeIframeSandboxRule) Create(c *lint.Context) lint.Visitors {
	pragma := c.Settings().Pragma

	return lint.Visitors{
		"CallExpression": func(n estree.Node) {
			if !astutil.IsCreateElementCall(n, pragma) {
				return
			}
			call := n.(*estree.CallExpression)
			if len(call.Arguments) < 2 || !iframeTag.Match(call.Arguments[0]) {
				return
			}
			props, ok := call.Arguments[1].(*estree.ObjectExpression)
			if !ok {
				return
			}
			prop := astutil.FindProperty(props.Properties, "sandbox")
			if prop == nil {
				return
			}
			if value, ok := astutil.StaticString(prop.Value); ok && isUnsafeSandbox(value) {
				c.Report(lint.Descriptor{MessageID: "NO_UNSAFE_IFRAME_SANDBOX", Node: call})
			}
		},
		"JSXElement": func(n estree.Node) {
			el := n.(*estree.JSXElement)
			if astutil.JSXElementName(el.OpeningElement.Name) != "iframe" {
				return
			}
			attr := astutil.FindAttribute(el.OpeningElement, "sandbox")
			if attr == nil {
				return
			}
			if value, ok := astutil.StaticString(attr.Value); ok && isUnsafeSandbox(value) {
				c.Report(lint.Descriptor{MessageID: "NO_UNSAFE_IFRAME_SANDBOX", Node: el})
			}
		},
	}
}

func isUnsafeSandbox(value string) bool {
	tokens := strings.Fields(value)
	for _, combination := range unsafeSandboxCombinations {
		unsafe := true
		for _, token := range combination {
			if !slices.Contains(tokens, token) {
				unsafe = false
				break
			}
		}
		if unsafe {
			return true
		}
	}
	return false
}

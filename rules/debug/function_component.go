// Package debug provides rules that report what the analysis sees rather
// than problems. They are meant for inspecting the engine on real code.
package debug

import (
	"strings"

	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

// NewFunctionComponentRule creates a rule reporting every function component
// together with the outside names it reads.
//
//nolint:ireturn // Rule constructors built with lint.Define return the interface
func NewFunctionComponentRule() lint.Rule {
	return lint.Define("debug/function-component",
		lint.Meta{
			Description: "report all function components, including anonymous ones",
			Kind:        lint.KindSuggestion,
			Messages: map[string]string{
				"FUNCTION_COMPONENT": "[function component] name: {{name}}, externals: {{externals}}",
			},
		},
		nil,
		func(c *lint.Context) lint.Visitors {
			return lint.Visitors{
				"FunctionDeclaration:exit, FunctionExpression:exit, ArrowFunctionExpression:exit": func(n estree.Node) {
					if !astutil.IsFunctionComponent(n, c.Collector()) {
						return
					}
					refs := c.Resolver().ExternalReferences(n)
					names := make([]string, len(refs))
					for i, ref := range refs {
						names[i] = ref.Text
					}
					c.Report(lint.Descriptor{
						MessageID: "FUNCTION_COMPONENT",
						Node:      n,
						Data: map[string]interface{}{
							"name":      astutil.ComponentIdentifier(n).Name,
							"externals": strings.Join(names, ", "),
						},
					})
				},
			}
		},
	)
}

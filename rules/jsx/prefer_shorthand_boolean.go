package jsx

import (
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

// PreferShorthandBooleanRule reports `name={true}` attributes, which can be
// written as `name`.
type PreferShorthandBooleanRule struct{}

// NewPreferShorthandBooleanRule creates the rule.
func NewPreferShorthandBooleanRule() *PreferShorthandBooleanRule {
	return &PreferShorthandBooleanRule{}
}

// Name returns the unique identifier for this rule.
func (r *PreferShorthandBooleanRule) Name() string {
	return "jsx/prefer-shorthand-boolean"
}

// Meta describes the rule and its message.
func (r *PreferShorthandBooleanRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "enforce using shorthand boolean attributes",
		Kind:        lint.KindSuggestion,
		Messages: map[string]string{
			"PREFER_SHORTHAND_BOOLEAN": "Prefer shorthand boolean attribute '{{propName}}'.",
		},
		Fixable: true,
	}
}

// Schema returns nil; the rule has no options.
func (r *PreferShorthandBooleanRule) Schema() *lint.Schema { return nil }

// Create returns the visitors for one run.
func (r *PreferShorthandBooleanRule) Create(c *lint.Context) lint.Visitors {
	return lint.Visitors{
		"JSXAttribute[value.expression.value=true]": func(n estree.Node) {
			attr := n.(*estree.JSXAttribute)
			name := c.Source().GetText(attr.Name)
			c.Report(lint.Descriptor{
				MessageID: "PREFER_SHORTHAND_BOOLEAN",
				Node:      attr,
				Data:      map[string]interface{}{"propName": name},
				Fix:       &lint.Fix{Description: "drop the value", Range: attr.Range(), Text: name},
			})
		},
	}
}

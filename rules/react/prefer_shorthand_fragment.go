package react

import (
	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

// NewPreferShorthandFragmentRule creates a rule reporting attribute-less
// `<Fragment>` elements that can be written as `<>`. Short fragments exist
// from React 16.2.
//
//nolint:ireturn // Rule constructors built with lint.Define return the interface
func NewPreferShorthandFragmentRule() lint.Rule {
	return lint.Define("react/prefer-shorthand-fragment",
		lint.Meta{
			Description: "enforce using fragment syntax instead of Fragment component",
			Kind:        lint.KindSuggestion,
			Messages: map[string]string{
				"PREFER_SHORTHAND_FRAGMENT": "Prefer shorthand fragment syntax instead of '{{reactPragma}}.{{fragmentPragma}}'.",
			},
			Requires: ">=16.2.0",
			Fixable:  true,
		},
		nil,
		createPreferShorthandFragment,
	)
}

func createPreferShorthandFragment(c *lint.Context) lint.Visitors {
	settings := c.Settings()

	return lint.Visitors{
		"JSXElement": func(n estree.Node) {
			if !astutil.IsFragmentElement(n, settings.Pragma, settings.Fragment) {
				return
			}
			el := n.(*estree.JSXElement)
			if len(el.OpeningElement.Attributes) > 0 {
				return
			}
			c.Report(lint.Descriptor{
				MessageID: "PREFER_SHORTHAND_FRAGMENT",
				Node:      el,
				Data: map[string]interface{}{
					"reactPragma":    settings.Pragma,
					"fragmentPragma": settings.Fragment,
				},
				Fix: &lint.Fix{
					Description: "use <> and </>",
					Range:       el.Range(),
					Text:        "<>" + childrenText(c.Source(), el) + "</>",
				},
			})
		},
	}
}

// childrenText returns the source between an element's opening and closing
// tags.
func childrenText(src *estree.SourceCode, el *estree.JSXElement) string {
	if el.ClosingElement == nil {
		return ""
	}
	return src.Slice(estree.Range{el.OpeningElement.Range().End(), el.ClosingElement.Range().Start()})
}

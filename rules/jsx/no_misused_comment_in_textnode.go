package jsx

import (
	"regexp"

	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

var commentLikeText = regexp.MustCompile(`(?m)^\s*/(/|\*)`)

// NewNoMisusedCommentInTextNodeRule creates a rule reporting JSX text that
// looks like a JavaScript comment, which React renders verbatim.
//
//nolint:ireturn // Rule constructors built with lint.Define return the interface
func NewNoMisusedCommentInTextNodeRule() lint.Rule {
	return lint.Define("jsx/no-misused-comment-in-textnode",
		lint.Meta{
			Description: "disallow comments from being inserted as text nodes",
			Kind:        lint.KindSuggestion,
			Messages: map[string]string{
				"NO_MISUSED_COMMENT_IN_TEXTNODE": "Possible misused comment in text node. Comments inside children section of tag should be placed inside braces.",
			},
		},
		nil,
		func(c *lint.Context) lint.Visitors {
			return lint.Visitors{
				"JSXText": func(n estree.Node) {
					if commentLikeText.MatchString(c.Source().GetText(n)) {
						c.Report(lint.Descriptor{MessageID: "NO_MISUSED_COMMENT_IN_TEXTNODE", Node: n})
					}
				},
			}
		},
	)
}

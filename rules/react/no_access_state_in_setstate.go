package react

import (
	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
	"github.com/input-output-hk/jsxlint/pattern"
)

var thisState = pattern.Of(estree.TypeMemberExpression, pattern.Fields{
	"object":   pattern.Of(estree.TypeThisExpression, nil),
	"property": pattern.Of(estree.TypeIdentifier, pattern.Fields{"name": "state"}),
	"computed": false,
})

// NoAccessStateInSetStateRule reports reads of `this.state` inside the
// argument of `this.setState` in class components. Updates are batched, so
// the read may see stale state.
type NoAccessStateInSetStateRule struct{}

// NewNoAccessStateInSetStateRule creates the rule.
func NewNoAccessStateInSetStateRule() *NoAccessStateInSetStateRule {
	return &NoAccessStateInSetStateRule{}
}

// Name returns the unique identifier for this rule.
func (r *NoAccessStateInSetStateRule) Name() string {
	return "react/no-access-state-in-setstate"
}

// Meta describes the rule and its message.
func (r *NoAccessStateInSetStateRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "disallow accessing `this.state` within `setState`",
		Kind:        lint.KindProblem,
		Messages: map[string]string{
			"NO_ACCESS_STATE_IN_SETSTATE": "Do not access `this.state` within `setState`. Use the update function instead.",
		},
	}
}

// Schema returns nil; the rule has no options.
func (r *NoAccessStateInSetStateRule) Schema() *lint.Schema { return nil }

// Create returns the visitors for one run.
func (r *NoAccessStateInSetStateRule) Create(c *lint.Context) lint.Visitors {
	pragma := c.Settings().Pragma

	return lint.Visitors{
		"MemberExpression": func(n estree.Node) {
			if !thisState.Match(n) {
				return
			}
			// A non-arrow function rebinds `this`, so the search stops there.
			call := astutil.WalkUpUntil(n, func(p estree.Node) bool {
				return setStateCall.Match(p) ||
					astutil.IsOneOf(p, estree.TypeFunctionDeclaration, estree.TypeFunctionExpression)
			})
			if !setStateCall.Match(call) {
				return
			}
			class := astutil.WalkUpUntil(call, astutil.OneOf(estree.TypeClassDeclaration, estree.TypeClassExpression))
			if !astutil.IsClassComponent(class, pragma) {
				return
			}
			c.Report(lint.Descriptor{MessageID: "NO_ACCESS_STATE_IN_SETSTATE", Node: n})
		},
	}
}

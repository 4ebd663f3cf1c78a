package react

import (
	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
	"github.com/input-output-hk/jsxlint/pattern"
)

const (
	// ModeAllowInFunc allows setState in functions nested in componentDidMount.
	ModeAllowInFunc = "allow-in-func"
	// ModeDisallowInFunc reports setState anywhere inside componentDidMount.
	ModeDisallowInFunc = "disallow-in-func"
)

// SetStateOptions configures NoSetStateInComponentDidMountRule.
type SetStateOptions struct {
	Mode string `json:"mode"`
}

var setStateCall = pattern.Of(estree.TypeCallExpression, pattern.Fields{
	"callee": pattern.Of(estree.TypeMemberExpression, pattern.Fields{
		"object":   pattern.Of(estree.TypeThisExpression, nil),
		"property": pattern.Of(estree.TypeIdentifier, pattern.Fields{"name": "setState"}),
		"computed": false,
	}),
})

// NoSetStateInComponentDidMountRule reports `this.setState` calls in the
// componentDidMount lifecycle of class components, which trigger a second
// render before the browser paints.
type NoSetStateInComponentDidMountRule struct{}

// NewNoSetStateInComponentDidMountRule creates the rule.
func NewNoSetStateInComponentDidMountRule() *NoSetStateInComponentDidMountRule {
	return &NoSetStateInComponentDidMountRule{}
}

// Name returns the unique identifier for this rule.
func (r *NoSetStateInComponentDidMountRule) Name() string {
	return "react/no-set-state-in-component-did-mount"
}

// Meta describes the rule and its message.
func (r *NoSetStateInComponentDidMountRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "disallow calling `this.setState` in `componentDidMount`",
		Kind:        lint.KindProblem,
		Messages: map[string]string{
			"NO_SET_STATE_IN_COMPONENT_DID_MOUNT": "Do not call `this.setState` in `componentDidMount` outside of functions, such as callbacks.",
		},
	}
}

// Schema accepts the mode as a string or as {mode}.
func (r *NoSetStateInComponentDidMountRule) Schema() *lint.Schema {
	return &lint.Schema{
		CUE:       `*"allow-in-func" | "disallow-in-func" | close({mode: *"allow-in-func" | "disallow-in-func"})`,
		Normalize: lint.StringOr(
			func(mode string) SetStateOptions { return SetStateOptions{Mode: mode} },
			func(o SetStateOptions) SetStateOptions { return o },
		),
	}
}

// Create returns the visitors for one run.
func (r *NoSetStateInComponentDidMountRule) Create(c *lint.Context) lint.Visitors {
	opts := lint.OptionsAs[SetStateOptions](c)
	pragma := c.Settings().Pragma

	return lint.Visitors{
		"CallExpression": func(n estree.Node) {
			if !setStateCall.Match(n) {
				return
			}
			member := astutil.WalkUpUntil(n, astutil.OneOf(estree.TypeMethodDefinition, estree.TypePropertyDefinition))
			lifecycle := lifecycleFunction(member, "componentDidMount")
			if lifecycle == nil {
				return
			}
			if class := member.Parent().Parent(); !astutil.IsClassComponent(class, pragma) {
				return
			}
			if opts.Mode != ModeDisallowInFunc && enclosingFunction(n) != lifecycle {
				return
			}
			c.Report(lint.Descriptor{MessageID: "NO_SET_STATE_IN_COMPONENT_DID_MOUNT", Node: n})
		},
	}
}

// lifecycleFunction returns the function of a class member called name.
func lifecycleFunction(member estree.Node, name string) estree.Node {
	switch m := member.(type) {
	case *estree.MethodDefinition:
		if !m.Computed && astutil.IsIdentifierNamed(m.Key, name) && m.Value != nil {
			return m.Value
		}
	case *estree.PropertyDefinition:
		if !m.Computed && astutil.IsIdentifierNamed(m.Key, name) && astutil.IsFunction(m.Value) {
			return m.Value
		}
	}
	return nil
}

func enclosingFunction(n estree.Node) estree.Node {
	return astutil.WalkUpUntil(n, astutil.IsFunction)
}

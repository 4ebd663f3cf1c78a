package naming

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

const (
	// PascalCase names look like `TestComponent`.
	PascalCase = "PascalCase"
	// ConstantCase names look like `TEST_COMPONENT`.
	ConstantCase = "CONSTANT_CASE"
)

// ComponentNameOptions configures ComponentNameRule.
type ComponentNameOptions struct {
	Rule    string   `json:"rule"`
	Excepts []string `json:"excepts"`
}

var (
	pascalCasePattern   = regexp.MustCompile(`^\p{Lu}[\p{L}\p{N}]*$`)
	constantCasePattern = regexp.MustCompile(`^\p{Lu}[\p{Lu}\p{N}_]*$`)
	allCapsPattern      = regexp.MustCompile(`^\p{Lu}[\p{Lu}\p{N}]*$`)
)

// ComponentNameRule enforces a naming convention for components, both where
// they are declared and where JSX uses them.
type ComponentNameRule struct{}

// NewComponentNameRule creates the rule.
func NewComponentNameRule() *ComponentNameRule {
	return &ComponentNameRule{}
}

// Name returns the unique identifier for this rule.
func (r *ComponentNameRule) Name() string {
	return "naming-convention/component-name"
}

// Meta describes the rule and its message.
func (r *ComponentNameRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "enforce component naming convention to PascalCase or CONSTANT_CASE",
		Kind:        lint.KindSuggestion,
		Messages: map[string]string{
			"COMPONENT_NAME": "A component name must be in {{case}}.",
		},
	}
}

// Schema accepts "PascalCase", "CONSTANT_CASE" or {rule, excepts}.
func (r *ComponentNameRule) Schema() *lint.Schema {
	return &lint.Schema{
		CUE: `*"PascalCase" | "CONSTANT_CASE" | close({
	rule:    *"PascalCase" | "CONSTANT_CASE"
	excepts: *[] | [...string]
})`,
		Normalize: lint.StringOr(
			func(rule string) ComponentNameOptions { return ComponentNameOptions{Rule: rule} },
			func(o ComponentNameOptions) ComponentNameOptions { return o },
		),
	}
}

// Create returns the visitors for one run.
func (r *ComponentNameRule) Create(c *lint.Context) lint.Visitors {
	opts := lint.OptionsAs[ComponentNameOptions](c)

	check := func(name string, n estree.Node) {
		if isValidComponentName(name, opts) {
			return
		}
		c.Report(lint.Descriptor{
			MessageID: "COMPONENT_NAME",
			Node:      n,
			Data:      map[string]interface{}{"case": opts.Rule, "name": name},
		})
	}

	return lint.Visitors{
		"JSXOpeningElement": func(n estree.Node) {
			// Only plain names; Modal.Header and svg:path are skipped.
			id, ok := n.(*estree.JSXOpeningElement).Name.(*estree.JSXIdentifier)
			if !ok || !startsUpper(strings.TrimLeft(id.Name, "_")) {
				return
			}
			check(id.Name, id)
		},
		"FunctionDeclaration, FunctionExpression, ArrowFunctionExpression": func(n estree.Node) {
			if !astutil.IsFunctionComponent(n, c.Collector()) {
				return
			}
			id := astutil.ComponentIdentifier(n)
			check(id.Name, id)
		},
	}
}

func isValidComponentName(name string, opts ComponentNameOptions) bool {
	if slices.Contains(opts.Excepts, name) {
		return true
	}
	name = strings.TrimLeft(name, "_")
	if opts.Rule == ConstantCase {
		return constantCasePattern.MatchString(name)
	}
	return pascalCasePattern.MatchString(name) || allCapsPattern.MatchString(name)
}

func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

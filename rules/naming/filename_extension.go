// Package naming provides naming-convention rules for files and components.
package naming

import (
	"path/filepath"
	"slices"

	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/lint"
)

const (
	// AllowAlways requires a JSX extension on files containing JSX.
	AllowAlways = "always"
	// AllowAsNeeded additionally reports JSX extensions on files without JSX.
	AllowAsNeeded = "as-needed"
)

// FilenameExtensionOptions configures FilenameExtensionRule.
type FilenameExtensionOptions struct {
	Allow      string   `json:"allow"`
	Extensions []string `json:"extensions"`
}

// DefaultJSXExtensions are the extensions treated as JSX files.
var DefaultJSXExtensions = []string{".jsx", ".tsx"}

// FilenameExtensionRule checks that files use a JSX extension exactly when
// they contain JSX.
type FilenameExtensionRule struct{}

// NewFilenameExtensionRule creates the rule.
func NewFilenameExtensionRule() *FilenameExtensionRule {
	return &FilenameExtensionRule{}
}

// Name returns the unique identifier for this rule.
func (r *FilenameExtensionRule) Name() string {
	return "naming-convention/filename-extension"
}

// Meta describes the rule and its messages.
func (r *FilenameExtensionRule) Meta() lint.Meta {
	return lint.Meta{
		Description: "enforce naming convention for JSX file extensions",
		Kind:        lint.KindSuggestion,
		Messages: map[string]string{
			"INVALID":    "The JSX file extension is required.",
			"UNEXPECTED": "Use JSX file extension as needed.",
		},
	}
}

// Schema accepts "always", "as-needed" or {allow, extensions}.
func (r *FilenameExtensionRule) Schema() *lint.Schema {
	return &lint.Schema{
		CUE: `*"as-needed" | "always" | close({
	allow:      *"as-needed" | "always"
	extensions: *[".jsx", ".tsx"] | [...=~"^\\."]
})`,
		Normalize: lint.StringOr(
			func(allow string) FilenameExtensionOptions {
				return FilenameExtensionOptions{Allow: allow, Extensions: DefaultJSXExtensions}
			},
			func(o FilenameExtensionOptions) FilenameExtensionOptions { return o },
		),
	}
}

// Create returns the visitors for one run. The file is judged once the
// whole program has been seen.
func (r *FilenameExtensionRule) Create(c *lint.Context) lint.Visitors {
	opts := lint.OptionsAs[FilenameExtensionOptions](c)
	hasJSX := false
	markJSX := func(estree.Node) { hasJSX = true }

	return lint.Visitors{
		"JSXElement":  markJSX,
		"JSXFragment": markJSX,
		"Program:exit": func(n estree.Node) {
			isJSXExt := slices.Contains(opts.Extensions, filepath.Ext(c.Filename()))
			switch {
			case hasJSX && !isJSXExt:
				c.Report(lint.Descriptor{MessageID: "INVALID", Node: n})
			case opts.Allow == AllowAsNeeded && isJSXExt && !hasJSX && len(n.(*estree.Program).Body) > 0:
				c.Report(lint.Descriptor{MessageID: "UNEXPECTED", Node: n})
			}
		},
	}
}

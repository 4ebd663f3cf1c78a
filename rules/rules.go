// Package rules assembles the bundled rules into a lint.Registry along with
// the recommended, all and debug presets.
package rules

import (
	"strings"

	"github.com/input-output-hk/jsxlint/lint"
	"github.com/input-output-hk/jsxlint/rules/debug"
	"github.com/input-output-hk/jsxlint/rules/jsx"
	"github.com/input-output-hk/jsxlint/rules/naming"
	"github.com/input-output-hk/jsxlint/rules/react"
)

const (
	// PresetRecommended enables the rules suited to most code bases.
	PresetRecommended = "recommended"
	// PresetAll enables every rule except the debug ones.
	PresetAll = "all"
	// PresetDebug enables the debug rules only.
	PresetDebug = "debug"
)

// All returns a fresh instance of every bundled rule.
func All() []lint.Rule {
	return []lint.Rule{
		jsx.NewNoLeakedConditionalRenderingRule(),
		jsx.NewNoMissingKeyRule(),
		jsx.NewNoMisusedCommentInTextNodeRule(),
		jsx.NewPreferShorthandBooleanRule(),
		react.NewNoUnsafeIframeSandboxRule(),
		react.NewPreferShorthandFragmentRule(),
		react.NewNoSetStateInComponentDidMountRule(),
		react.NewNoAccessStateInSetStateRule(),
		react.NewNoConstructedContextValueRule(),
		naming.NewFilenameExtensionRule(),
		naming.NewComponentNameRule(),
		debug.NewFunctionComponentRule(),
	}
}

// NewRegistry returns a registry holding every bundled rule and preset.
func NewRegistry() (*lint.Registry, error) {
	registry := lint.NewRegistry()
	if err := registry.Register(All()...); err != nil {
		return nil, err
	}

	recommended := lint.Config{}
	all := lint.Config{}
	dbg := lint.Config{}
	for _, rule := range registry.Rules() {
		name := rule.Name()
		switch {
		case strings.HasPrefix(name, "debug/"):
			dbg[name] = lint.RuleSetting{Severity: lint.SeverityInfo}
			continue
		case strings.HasPrefix(name, "naming-convention/"):
			recommended[name] = lint.RuleSetting{Severity: lint.SeverityWarning}
		default:
			recommended[name] = lint.RuleSetting{Severity: lint.SeverityError}
		}
		all[name] = lint.RuleSetting{Severity: lint.SeverityError}
	}
	delete(recommended, "naming-convention/filename-extension")

	for name, cfg := range map[string]lint.Config{
		PresetRecommended: recommended,
		PresetAll:         all,
		PresetDebug:       dbg,
	} {
		if err := registry.RegisterPreset(name, cfg); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

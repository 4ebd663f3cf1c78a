// Package linttest provides helpers for testing rules: trees built with
// estreetest are printed, wrapped in a lint.File and run through
// lint.RunRule.
package linttest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/estree/estreetest"
	"github.com/input-output-hk/jsxlint/lint"
)

// File prints prog and wraps it in a lint.File called name.
func File(t *testing.T, name string, prog *estree.Program) *lint.File {
	t.Helper()
	printed := estreetest.Print(prog)
	file, err := lint.NewFile(name, printed.Program, printed.Source.Text(), nil)
	require.NoError(t, err)
	return file
}

// Run runs rule over prog, printed as "test.jsx", and fails the test on
// error.
func Run(t *testing.T, rule lint.Rule, prog *estree.Program, options interface{}, opts ...lint.RunOption) []lint.Diagnostic {
	t.Helper()
	return RunFile(t, rule, File(t, "test.jsx", prog), options, opts...)
}

// RunFile runs rule over file and fails the test on error.
func RunFile(t *testing.T, rule lint.Rule, file *lint.File, options interface{}, opts ...lint.RunOption) []lint.Diagnostic {
	t.Helper()
	diags, err := lint.RunRule(context.Background(), rule, file, options, opts...)
	require.NoError(t, err)
	return diags
}

// MessageIDs returns the message id of each diagnostic.
func MessageIDs(diags []lint.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.MessageID
	}
	return out
}

// Texts returns the source text of each diagnostic's range.
func Texts(file *lint.File, diags []lint.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = file.Source.Slice(d.Range)
	}
	return out
}

package react

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/input-output-hk/jsxlint/estree/estreetest"
	"github.com/input-output-hk/jsxlint/lint"
	"github.com/input-output-hk/jsxlint/lint/linttest"
)

func TestPreferShorthandFragment(t *testing.T) {
	rule := NewPreferShorthandFragmentRule()

	t.Run("qualified fragment", func(t *testing.T) {
		file := linttest.File(t, "test.jsx", Program(ExprStmt(Elem("React.Fragment", nil, Elem("a", nil), Text(" b")))))
		diags := linttest.RunFile(t, rule, file, nil)
		require.Len(t, diags, 1)
		assert.Equal(t, "Prefer shorthand fragment syntax instead of 'React.Fragment'.", diags[0].Message)
		require.NotNil(t, diags[0].Fix)
		assert.Equal(t, "<><a /> b</>;\n", diags[0].Fix.Apply(file.Source.Text()))
	})

	t.Run("bare fragment", func(t *testing.T) {
		file := linttest.File(t, "test.jsx", Program(ExprStmt(Elem("Fragment", nil))))
		diags := linttest.RunFile(t, rule, file, nil)
		require.Len(t, diags, 1)
		assert.Equal(t, "<></>;\n", diags[0].Fix.Apply(file.Source.Text()))
	})

	t.Run("keyed fragment", func(t *testing.T) {
		prog := Program(ExprStmt(Elem("React.Fragment", Attrs(AttrStr("key", "a")), Text("x"))))
		assert.Empty(t, linttest.Run(t, rule, prog, nil))
	})

	t.Run("other elements", func(t *testing.T) {
		prog := Program(ExprStmt(Elem("Other.Fragment", nil)), ExprStmt(Frag(Text("x"))))
		assert.Empty(t, linttest.Run(t, rule, prog, nil))
	})

	t.Run("custom pragma", func(t *testing.T) {
		prog := Program(ExprStmt(Elem("Preact.Frag", nil)))
		diags := linttest.Run(t, rule, prog, nil, lint.WithSettings(lint.Settings{Pragma: "Preact", Fragment: "Frag"}))
		require.Len(t, diags, 1)
		assert.Equal(t, "Prefer shorthand fragment syntax instead of 'Preact.Frag'.", diags[0].Message)
	})

	t.Run("old React", func(t *testing.T) {
		prog := Program(ExprStmt(Elem("React.Fragment", nil)))
		settings := lint.Settings{ReactVersion: "16.1.0"}
		assert.Empty(t, linttest.Run(t, rule, prog, nil, lint.WithSettings(settings)))

		settings.ReactVersion = "18.3.1"
		assert.Len(t, linttest.Run(t, rule, prog, nil, lint.WithSettings(settings)), 1)
	})
}

package jsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/jsxlint/estree"
	. "github.com/input-output-hk/jsxlint/estree/estreetest"
	"github.com/input-output-hk/jsxlint/lint/linttest"
)

func mapOver(callback estree.Node) *estree.Program {
	return Program(ExprStmt(Call(Path("list.map"), callback)))
}

func TestNoMissingKeyIterator(t *testing.T) {
	rule := NewNoMissingKeyRule()

	t.Run("element without key", func(t *testing.T) {
		element := Elem("li", nil)
		diags := linttest.Run(t, rule, mapOver(Arrow(Params("item"), element)), nil)
		require.Len(t, diags, 1)
		assert.Equal(t, "NO_MISSING_KEY", diags[0].MessageID)
		assert.Same(t, element, diags[0].Node)
		assert.Equal(t, "Missing 'key' prop for element in iterator.", diags[0].Message)
	})

	tests := []struct {
		name     string
		callback estree.Node
		want     []string
	}{
		{
			name:     "keyed element",
			callback: Arrow(Params("item"), Elem("li", Attrs(AttrExpr("key", Path("item.id"))))),
		},
		{
			name:     "fragment",
			callback: Arrow(Params("item"), Frag(Text("x"))),
			want:     []string{"NO_MISSING_KEY_WITH_FRAGMENT"},
		},
		{
			name: "block body",
			callback: FuncExpr("", Params("item"),
				If(Ident("item"), Block(Return(Elem("li", nil))), nil),
				Return(Elem("li", Attrs(AttrStr("key", "empty")))),
			),
			want: []string{"NO_MISSING_KEY"},
		},
		{
			name:     "conditional branches",
			callback: Arrow(Params("item"), Cond(Ident("item"), Elem("a", nil), Logical(Ident("b"), "&&", Elem("b", nil)))),
			want:     []string{"NO_MISSING_KEY", "NO_MISSING_KEY"},
		},
		{
			name: "returns of nested callbacks are ignored",
			callback: Arrow(Params("item"), Block(
				Const("render", Arrow(nil, Block(Return(Elem("span", nil))))),
				Return(Call(Ident("render"))),
			)),
		},
		{
			name:     "non-JSX result",
			callback: Arrow(Params("item"), Path("item.name")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, rule, mapOver(tt.callback), nil)
			if tt.want == nil {
				assert.Empty(t, diags)
				return
			}
			assert.Equal(t, tt.want, linttest.MessageIDs(diags))
		})
	}

	t.Run("other calls", func(t *testing.T) {
		prog := Program(ExprStmt(Call(Path("list.forEach"), Arrow(Params("item"), Elem("li", nil)))))
		assert.Empty(t, linttest.Run(t, rule, prog, nil))

		prog = Program(ExprStmt(Call(Path("list.map"), Ident("renderItem"))))
		assert.Empty(t, linttest.Run(t, rule, prog, nil))
	})
}

func TestNoMissingKeyArray(t *testing.T) {
	rule := NewNoMissingKeyRule()
	prog := Program(Const("items", Array(
		Elem("li", nil),
		Elem("li", Attrs(AttrStr("key", "b"))),
		Frag(),
		Str("text"),
	)))

	diags := linttest.Run(t, rule, prog, nil)
	assert.Equal(t, []string{"NO_MISSING_KEY", "NO_MISSING_KEY_WITH_FRAGMENT"}, linttest.MessageIDs(diags))
	assert.Equal(t, "Missing 'key' prop for element in array.", diags[0].Message)
}

package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/input-output-hk/jsxlint/estree/estreetest"
	"github.com/input-output-hk/jsxlint/lint/linttest"
)

func TestFunctionComponent(t *testing.T) {
	list := Elem("List", Attrs(
		AttrExpr("items", Ident("items")),
		AttrExpr("count", Ident("count")),
		AttrExpr("user", Path("props.user.name")),
		AttrExpr("color", Path("theme.color")),
		AttrExpr("bg", Path("theme.color")),
	))
	app := Func("App", Params(ObjectPat("items")),
		Const("count", Num(1)),
		Return(list),
	)
	card := Arrow(nil, Elem("div", nil, Container(Ident("label"))))
	prog := Program(
		Const("theme", Object()),
		app,
		Const("Card", card),
		Func("helper", nil, Return(Elem("span", nil))),
	)

	diags := linttest.Run(t, NewFunctionComponentRule(), prog, nil)
	require.Len(t, diags, 2)

	assert.Same(t, app, diags[0].Node)
	assert.Equal(t, "[function component] name: App, externals: List, props.user.name, theme.color", diags[0].Message)

	assert.Same(t, card, diags[1].Node)
	assert.Equal(t, "[function component] name: Card, externals: label", diags[1].Message)
}

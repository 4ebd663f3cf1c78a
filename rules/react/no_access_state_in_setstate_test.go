package react

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/jsxlint/estree"
	. "github.com/input-output-hk/jsxlint/estree/estreetest"
	"github.com/input-output-hk/jsxlint/lint/linttest"
)

// stateComponent renders `<div onClick={() => handler} />` from a class
// extending superClass.
func stateComponent(superClass, handler estree.Node) *estree.Program {
	return Program(Class("Counter", superClass,
		ClassProp("state", Object(Prop("foo", Num(1)))),
		Method("render", nil, Return(Elem("div", Attrs(AttrExpr("onClick", Arrow(nil, handler)))))),
	))
}

func setStateWith(arg estree.Node) estree.Node {
	return Call(Path("this.setState"), arg)
}

func TestNoAccessStateInSetState(t *testing.T) {
	rule := NewNoAccessStateInSetStateRule()

	t.Run("member read", func(t *testing.T) {
		read := Path("this.state")
		prog := stateComponent(Path("React.Component"),
			setStateWith(Object(Prop("foo", Binary(Member(read, "foo"), "+", Num(1))))))
		diags := linttest.Run(t, rule, prog, nil)
		require.Len(t, diags, 1)
		assert.Equal(t, "NO_ACCESS_STATE_IN_SETSTATE", diags[0].MessageID)
		assert.Same(t, read, diags[0].Node)
		assert.Equal(t, "Do not access `this.state` within `setState`. Use the update function instead.", diags[0].Message)
	})

	tests := []struct {
		name       string
		superClass estree.Node
		handler    estree.Node
		want       int
	}{
		{
			name:       "computed read",
			superClass: Path("React.Component"),
			handler:    setStateWith(Object(Prop("foo", Binary(Member(Path("this.state"), Str("foo")), "+", Num(1))))),
			want:       1,
		},
		{
			name:       "update expression",
			superClass: Path("React.Component"),
			handler:    setStateWith(Object(Prop("foo", Update("++", false, Path("this.state.foo"))))),
			want:       1,
		},
		{
			name:       "inside an updater arrow",
			superClass: Ident("PureComponent"),
			handler:    setStateWith(Arrow(nil, Object(Prop("foo", Binary(Path("this.state.foo"), "+", Num(1)))))),
			want:       1,
		},
		{
			name:       "constant update",
			superClass: Path("React.Component"),
			handler:    setStateWith(Object(Prop("foo", Num(2)))),
		},
		{
			name:       "read outside setState",
			superClass: Path("React.Component"),
			handler:    Call(Ident("log"), Path("this.state.foo")),
		},
		{
			name:       "function expression rebinds this",
			superClass: Path("React.Component"),
			handler:    setStateWith(FuncExpr("", nil, Return(Path("this.state")))),
		},
		{
			name:       "not a component",
			superClass: Ident("Base"),
			handler:    setStateWith(Object(Prop("foo", Path("this.state.foo")))),
		},
		{
			name:       "other receiver",
			superClass: Path("React.Component"),
			handler:    setStateWith(Object(Prop("foo", Path("other.state.foo")))),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, rule, stateComponent(tt.superClass, tt.handler), nil)
			assert.Len(t, diags, tt.want)
		})
	}
}

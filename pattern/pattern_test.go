package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/jsxlint/estree"
	. "github.com/input-output-hk/jsxlint/estree/estreetest"
)

var createElement = Of(estree.TypeCallExpression, Fields{
	"callee": Of(estree.TypeMemberExpression, Fields{
		"object":   Shape(Fields{"name": "React"}),
		"property": Shape(Fields{"name": "createElement"}),
	}),
})

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		node    estree.Node
		pattern *Pattern
		want    bool
	}{
		{
			name:    "nested member call",
			node:    Call(Path("React.createElement"), Str("iframe")),
			pattern: createElement,
			want:    true,
		},
		{
			name:    "different object",
			node:    Call(Path("Preact.createElement"), Str("iframe")),
			pattern: createElement,
		},
		{
			name:    "wrong type",
			node:    New(Path("React.createElement")),
			pattern: createElement,
		},
		{
			name:    "missing field is a non-match",
			node:    Call(Ident("createElement")),
			pattern: createElement,
		},
		{
			name:    "untyped shape",
			node:    Call(Member(Ident("items"), "map"), Ident("fn")),
			pattern: Shape(Fields{"callee": Shape(Fields{"property": Shape(Fields{"name": "map"})})}),
			want:    true,
		},
		{
			name:    "extra node fields are ignored",
			node:    Logical(Ident("a"), "&&", Ident("b")),
			pattern: Of(estree.TypeLogicalExpression, Fields{"operator": "&&"}),
			want:    true,
		},
		{
			name:    "any of literal values",
			node:    Logical(Ident("a"), "??", Ident("b")),
			pattern: Of(estree.TypeLogicalExpression, Fields{"operator": OneOf("&&", "||", "??")}),
			want:    true,
		},
		{
			name:    "any of patterns",
			node:    Cond(Ident("a"), Ident("b"), Bool(false)),
			pattern: Shape(Fields{"alternate": AnyOf(Of(estree.TypeIdentifier, nil), Shape(Fields{"value": false}))}),
			want:    true,
		},
		{
			name:    "null literal value",
			node:    Null(),
			pattern: Of(estree.TypeLiteral, Fields{"value": nil, "raw": "null"}),
			want:    true,
		},
		{
			name:    "numeric values compare across types",
			node:    Num(3),
			pattern: Of(estree.TypeLiteral, Fields{"value": 3}),
			want:    true,
		},
		{
			name:    "absent child",
			node:    Elem("br", nil),
			pattern: Of(estree.TypeJSXElement, Fields{"closingElement": Absent()}),
			want:    true,
		},
		{
			name:    "present child",
			node:    Elem("br", nil),
			pattern: Of(estree.TypeJSXElement, Fields{"closingElement": Present()}),
		},
		{
			name: "some attribute",
			node: Elem("li", Attrs(AttrStr("className", "x"), AttrExpr("key", Ident("id")))).OpeningElement,
			pattern: Of(estree.TypeJSXOpeningElement, Fields{
				"attributes": Some(Of(estree.TypeJSXAttribute, Fields{"name": Shape(Fields{"name": "key"})})),
			}),
			want: true,
		},
		{
			name:    "elements count",
			node:    Array(Num(1), nil),
			pattern: Of(estree.TypeArrayExpression, Fields{"elements": Elements(Of(estree.TypeLiteral, nil), Absent())}),
			want:    true,
		},
		{
			name:    "not",
			node:    Unary("!", Ident("x")),
			pattern: Of(estree.TypeUnaryExpression, Fields{"operator": Not("typeof")}),
			want:    true,
		},
		{
			name:    "where",
			node:    Ident("useState"),
			pattern: Shape(Fields{"name": Where("hook name", func(v interface{}) bool { return len(v.(string)) > 3 && v.(string)[:3] == "use" })}),
			want:    true,
		},
		{
			name:    "string kind",
			node:    Str("x"),
			pattern: Of(estree.TypeLiteral, Fields{"value": String()}),
			want:    true,
		},
		{
			name:    "unknown field",
			node:    Ident("x"),
			pattern: Shape(Fields{"operator": Absent()}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Print(Program(ExprStmt(tt.node)))
			assert.Equal(t, tt.want, Match(tt.node, tt.pattern), tt.pattern.String())
		})
	}
}

func TestMatchNil(t *testing.T) {
	var closing *estree.JSXClosingElement
	assert.False(t, Match(nil, Shape(nil)))
	assert.False(t, Match(closing, Of(estree.TypeJSXClosingElement, nil)))
}

func TestDescribeRoundTrip(t *testing.T) {
	nodes := []estree.Node{
		Logical(Ident("count"), "&&", Elem("span", nil, Text("x"))),
		Cond(Ident("cond"), Ident("x"), Null()),
		Call(Member(Ident("list"), "map"), Arrow(Params("item"), Elem("li", nil))),
		Array(Num(1), nil, Str("s")),
		Elem("iframe", Attrs(AttrStr("sandbox", "allow-scripts"), Attr("hidden", nil))),
	}

	for _, n := range nodes {
		f := Print(Program(ExprStmt(n)))
		p := Describe(n)
		assert.True(t, p.Match(n), f.Source.GetText(n))
	}
}

func TestDescribeMutationBreaksMatch(t *testing.T) {
	n := Logical(Ident("count"), "&&", Num(1))
	Print(Program(ExprStmt(n)))
	p := Describe(n)

	assert.True(t, p.Match(n))
	assert.False(t, p.With("operator", "||").Match(n))
	assert.False(t, p.With("right", Describe(Num(2))).Match(n))
	assert.False(t, p.With("left", Of(estree.TypeIdentifier, Fields{"name": "total"})).Match(n))
	assert.True(t, p.Match(n), "With does not modify the receiver")
}

func TestDescribeDistinguishesSiblings(t *testing.T) {
	a := Ident("a")
	b := Ident("b")
	Print(Program(ExprStmt(a), ExprStmt(b)))

	assert.True(t, Describe(a).Match(a))
	assert.False(t, Describe(a).Match(b))
}

func TestEqual(t *testing.T) {
	x := Ident("x")
	assert.True(t, Equal(1, 1.0))
	assert.True(t, Equal(uint8(2), int64(2)))
	assert.False(t, Equal(1, "1"))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, false))
	assert.True(t, Equal(x, x))
	assert.False(t, Equal(x, Ident("x")))
	assert.True(t, Equal(estree.TemplateValue{Raw: "a"}, estree.TemplateValue{Raw: "a"}))
}

func TestString(t *testing.T) {
	assert.Equal(t, `LogicalExpression{operator: "&&"}`, Of(estree.TypeLogicalExpression, Fields{"operator": "&&"}).String())
	assert.Equal(t, `*{name: oneOf[a b]}`, Shape(Fields{"name": OneOf("a", "b")}).String())
}

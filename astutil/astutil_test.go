package astutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/jsxlint/estree"
	. "github.com/input-output-hk/jsxlint/estree/estreetest"
)

// everyNode returns every node of the tree in pre-order.
func everyNode(root estree.Node) []estree.Node {
	var out []estree.Node
	estree.Inspect(root, func(n estree.Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

func sampleProgram() *estree.Program {
	return Program(
		Func("List", Params(ObjectPat("items")),
			Return(Elem("ul", nil, Container(
				Call(Member(Ident("items"), "map"), Arrow(Params("item"),
					Elem("li", Attrs(AttrExpr("key", Member(Ident("item"), "id"))), Container(Member(Ident("item"), "name"))),
				)),
			))),
		),
		ExprStmt(Logical(Ident("count"), "&&", Cond(Ident("a"), Str("x"), Null()))),
	)
}

func TestIsOneOf(t *testing.T) {
	prog := sampleProgram()
	Print(prog)

	for _, n := range everyNode(prog) {
		var without []estree.Type
		for _, typ := range estree.Types() {
			if typ != n.Type() {
				without = append(without, typ)
			}
		}
		assert.False(t, IsOneOf(n, without...), n.Type().String())
		assert.True(t, IsOneOf(n, append(without, n.Type())...), n.Type().String())
		assert.True(t, IsOneOf(n, n.Type()))
		assert.False(t, IsOneOf(n), "empty list never matches")
		assert.True(t, OneOf(estree.TypeUnknown, n.Type())(n))
	}
}

func TestPredicatesAreTotal(t *testing.T) {
	var closing *estree.JSXClosingElement

	for _, n := range []estree.Node{nil, closing} {
		assert.False(t, Is(n, estree.TypeJSXClosingElement))
		assert.False(t, IsOneOf(n, estree.TypeJSXClosingElement))
		assert.False(t, IsIdentifierNamed(n, "x"))
		assert.False(t, IsIdentifierNamedOneOf(n, "x"))
		assert.False(t, IsLiteralWithValue(n, nil))
		assert.False(t, IsStringLiteral(n))
		assert.False(t, IsFunction(n))
		assert.False(t, IsJSX(n))
		assert.Nil(t, WalkUpWhile(n, estree.TypeIdentifier))
		assert.Nil(t, WalkUpUntil(n, OfType(estree.TypeProgram)))
		assert.Empty(t, Ancestors(n))
	}
}

func TestLiteralPredicates(t *testing.T) {
	assert.True(t, IsLiteralWithValue(Num(0), 0))
	assert.True(t, IsLiteralWithValue(Str(""), ""))
	assert.False(t, IsLiteralWithValue(Str("0"), 0))
	assert.True(t, IsLiteralWithValue(Null(), nil))
	assert.True(t, IsLiteralWithValue(Bool(false), false))
	assert.False(t, IsLiteralWithValue(Bool(false), nil))
	assert.True(t, IsNullLiteral(Null()))
	assert.True(t, IsStringLiteral(Str("x")))
	assert.False(t, IsStringLiteral(Num(1)))
	assert.True(t, IsIdentifierNamed(Ident("cond"), "cond"))
	assert.False(t, IsIdentifierNamed(Str("cond"), "cond"))
	assert.True(t, IsIdentifierNamedOneOf(Ident("b"), "a", "b"))
	assert.False(t, IsIdentifierNamedOneOf(Ident("c")))
	assert.True(t, IsDestructuringPattern(ObjectPat("a")))
	assert.True(t, IsDestructuringPattern(Rest("a")))
	assert.False(t, IsDestructuringPattern(Ident("a")))
}

func TestWalkUpWhile(t *testing.T) {
	name := Ident("user")
	chain := Member(name, "profile", "name")
	call := Call(chain)
	Print(Program(ExprStmt(call)))

	allowed := []estree.Type{estree.TypeMemberExpression, estree.TypeIdentifier}
	top := WalkUpWhile(name, allowed...)
	assert.Same(t, chain, top)
	assert.Same(t, top, WalkUpWhile(top, allowed...), "fixed point")
	assert.Same(t, call, WalkUpWhile(call, allowed...), "returns the node itself when its parent is not allowed")
}

func TestWalkUpWhileIsIdempotent(t *testing.T) {
	prog := sampleProgram()
	Print(prog)

	allowLists := [][]estree.Type{
		{estree.TypeMemberExpression, estree.TypeIdentifier},
		{estree.TypeJSXElement, estree.TypeJSXExpressionContainer},
		{},
		estree.Types(),
	}
	for _, n := range everyNode(prog) {
		for _, allowed := range allowLists {
			once := WalkUpWhile(n, allowed...)
			assert.Same(t, once, WalkUpWhile(once, allowed...))
		}
	}
}

func TestWalkUpUntil(t *testing.T) {
	deep := Ident("deep")
	prog := Program(ExprStmt(Array(Object(Prop("a", Array(Array(Unary("!", Member(deep, "x")))))))))
	Print(prog)

	assert.Nil(t, WalkUpUntil(deep, OfType(estree.TypeCallExpression)), "no call ancestor before the root")
	assert.Nil(t, WalkUpUntil(deep, OfType(estree.TypeProgram)), "Program is never returned")
	assert.NotNil(t, WalkUpUntil(deep, OfType(estree.TypeProperty)))

	setState := Call(Path("this.setState"))
	method := Method("componentDidMount", nil, ExprStmt(setState))
	Print(Program(Class("App", nil, method)))
	assert.Same(t, method, WalkUpUntil(setState, OfType(estree.TypeMethodDefinition)))
	assert.Same(t, method.Value, WalkUpUntil(setState, IsFunction))
}

func TestAncestorsAndFunctionAncestor(t *testing.T) {
	inner := Ident("inner")
	arrow := Arrow(nil, inner)
	outer := Func("Outer", nil, Const("Inner", arrow))
	prog := Program(outer)
	Print(prog)

	ancestors := Ancestors(inner)
	require.NotEmpty(t, ancestors)
	assert.Same(t, prog, ancestors[0])
	assert.Same(t, arrow, ancestors[len(ancestors)-1])
	assert.Same(t, outer, FunctionAncestor(inner), "outermost function wins")

	expr := Ident("x")
	Print(Program(Const("Comp", Arrow(nil, expr))))
	assert.IsType(t, &estree.ArrowFunctionExpression{}, FunctionAncestor(expr))

	loose := Ident("y")
	Print(Program(ExprStmt(Call(Ident("run"), Arrow(nil, loose)))))
	assert.Nil(t, FunctionAncestor(loose), "anonymous callbacks are not named functions")
}

func TestNestedIdentifiers(t *testing.T) {
	expr := Call(Ident("fn"),
		Ident("a"),
		Array(Ident("b"), nil, Spread(Ident("c"))),
		Object(Prop("k", Ident("d")), Shorthand("e")),
		Template("x", Ident("f"), "y"),
		Member(Ident("g"), "h"),
		Unary("!", Ident("i")),
		NonNull(Ident("j")),
		Arrow(Params("ignored"), Ident("ignored")),
	)
	Print(Program(ExprStmt(expr)))

	c := NewCollector()
	var names []string
	for _, id := range c.NestedIdentifiers(expr) {
		names = append(names, id.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "i", "j"}, names)
}

func TestNestedIdentifiersHasNoDuplicatesAndIsMemoized(t *testing.T) {
	prog := sampleProgram()
	Print(prog)
	c := NewCollector()

	for _, n := range everyNode(prog) {
		ids := c.NestedIdentifiers(n)
		seen := make(map[*estree.Identifier]bool)
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate identifier %s", id.Name)
			seen[id] = true
		}
		again := c.NestedIdentifiers(n)
		assert.Equal(t, ids, again)
	}
	assert.NotEmpty(t, c.identifiers, "results are cached per node")

	arr := Array(Ident("a"), Ident("b"))
	Print(Program(ExprStmt(arr)))
	first := c.NestedIdentifiers(arr)
	require.Len(t, first, 2)
	first[0] = nil
	assert.NotNil(t, c.NestedIdentifiers(arr)[0], "callers get a copy")
}

func TestNestedReturnStatements(t *testing.T) {
	r1 := Return(Null())
	r2 := Return(Ident("a"))
	r3 := Return(nil)
	r4 := Return(Str("nested"))
	fn := Func("F", nil,
		If(Ident("x"), Block(r1), Block(
			Switch(Ident("y"), Case(Str("a"), r2), Case(nil)),
		)),
		Try(Block(r3), Catch(Ident("e"), Block()), nil),
		ExprStmt(Arrow(nil, Block(r4))),
	)
	Print(Program(fn))

	c := NewCollector()
	assert.Equal(t, []*estree.ReturnStatement{r1, r2, r3, r4}, c.NestedReturnStatements(fn))
	assert.Equal(t, []*estree.ReturnStatement{r1}, c.NestedReturnStatements(fn.Body.(*estree.BlockStatement).Body[0].(*estree.IfStatement).Consequent))
	assert.Empty(t, c.NestedReturnStatements(nil))
}

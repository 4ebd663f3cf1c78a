// Package estreetest builds syntax trees for tests. Constructors return
// unpositioned nodes; Print renders a Program to source text, assigns every
// node its range and location, and links parents.
package estreetest

import (
	"strconv"
	"strings"

	"github.com/input-output-hk/jsxlint/estree"
)

// Program

func Program(body ...estree.Node) *estree.Program {
	return &estree.Program{Body: body, SourceType: "module"}
}

func ExprStmt(e estree.Node) *estree.ExpressionStatement {
	return &estree.ExpressionStatement{Expression: e}
}

func Block(body ...estree.Node) *estree.BlockStatement {
	return &estree.BlockStatement{Body: body}
}

func Return(arg estree.Node) *estree.ReturnStatement {
	return &estree.ReturnStatement{Argument: arg}
}

func If(test, consequent, alternate estree.Node) *estree.IfStatement {
	return &estree.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

func Switch(discriminant estree.Node, cases ...*estree.SwitchCase) *estree.SwitchStatement {
	return &estree.SwitchStatement{Discriminant: discriminant, Cases: cases}
}

// Case builds a switch case; a nil test is the default case.
func Case(test estree.Node, body ...estree.Node) *estree.SwitchCase {
	return &estree.SwitchCase{Test: test, Consequent: body}
}

func Try(block *estree.BlockStatement, handler *estree.CatchClause, finalizer *estree.BlockStatement) *estree.TryStatement {
	return &estree.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}
}

func Catch(param estree.Node, body *estree.BlockStatement) *estree.CatchClause {
	return &estree.CatchClause{Param: param, Body: body}
}

// Declarations

// Var declares name (an identifier name or a pattern node) with an optional
// initializer.
func Var(kind string, name interface{}, init estree.Node) *estree.VariableDeclaration {
	return &estree.VariableDeclaration{
		Kind:         kind,
		Declarations: []*estree.VariableDeclarator{Declarator(name, init)},
	}
}

func Const(name interface{}, init estree.Node) *estree.VariableDeclaration {
	return Var("const", name, init)
}

func Let(name interface{}, init estree.Node) *estree.VariableDeclaration {
	return Var("let", name, init)
}

func Declarator(name interface{}, init estree.Node) *estree.VariableDeclarator {
	return &estree.VariableDeclarator{ID: target(name), Init: init}
}

// Func declares a named function with a block body.
func Func(name string, params []estree.Node, body ...estree.Node) *estree.FunctionDeclaration {
	return &estree.FunctionDeclaration{ID: optionalIdent(name), Params: params, Body: Block(body...)}
}

// FuncExpr builds a function expression; an empty name makes it anonymous.
func FuncExpr(name string, params []estree.Node, body ...estree.Node) *estree.FunctionExpression {
	return &estree.FunctionExpression{ID: optionalIdent(name), Params: params, Body: Block(body...)}
}

// Arrow builds an arrow function. A *estree.BlockStatement body gives a block
// arrow; anything else an expression arrow.
func Arrow(params []estree.Node, body estree.Node) *estree.ArrowFunctionExpression {
	_, block := body.(*estree.BlockStatement)
	return &estree.ArrowFunctionExpression{Params: params, Body: body, Expression: !block}
}

// Params turns identifier names and pattern nodes into a parameter list.
func Params(params ...interface{}) []estree.Node {
	out := make([]estree.Node, len(params))
	for i, p := range params {
		out[i] = target(p)
	}
	return out
}

func Class(name string, superClass estree.Node, members ...estree.Node) *estree.ClassDeclaration {
	return &estree.ClassDeclaration{ID: optionalIdent(name), SuperClass: superClass, Body: &estree.ClassBody{Body: members}}
}

func ClassExpr(name string, superClass estree.Node, members ...estree.Node) *estree.ClassExpression {
	return &estree.ClassExpression{ID: optionalIdent(name), SuperClass: superClass, Body: &estree.ClassBody{Body: members}}
}

// Method builds a class method named name.
func Method(name string, params []estree.Node, body ...estree.Node) *estree.MethodDefinition {
	kind := "method"
	if name == "constructor" {
		kind = "constructor"
	}
	return &estree.MethodDefinition{
		Key:   Ident(name),
		Value: &estree.FunctionExpression{Params: params, Body: Block(body...)},
		Kind:  kind,
	}
}

func ClassProp(name string, value estree.Node) *estree.PropertyDefinition {
	return &estree.PropertyDefinition{Key: Ident(name), Value: value}
}

func ExportNamed(decl estree.Node) *estree.ExportNamedDeclaration {
	return &estree.ExportNamedDeclaration{Declaration: decl}
}

func ExportDefault(decl estree.Node) *estree.ExportDefaultDeclaration {
	return &estree.ExportDefaultDeclaration{Declaration: decl}
}

// Expressions

func Ident(name string) *estree.Identifier {
	return &estree.Identifier{Name: name}
}

func This() *estree.ThisExpression {
	return &estree.ThisExpression{}
}

func Str(s string) *estree.Literal {
	return &estree.Literal{Value: s, Raw: strconv.Quote(s)}
}

func Num(f float64) *estree.Literal {
	return &estree.Literal{Value: f, Raw: strconv.FormatFloat(f, 'g', -1, 64)}
}

func Bool(b bool) *estree.Literal {
	return &estree.Literal{Value: b, Raw: strconv.FormatBool(b)}
}

func Null() *estree.Literal {
	return &estree.Literal{Raw: "null"}
}

// Template builds a template literal from alternating text chunks and
// expressions, starting and ending with text.
func Template(parts ...interface{}) *estree.TemplateLiteral {
	tl := &estree.TemplateLiteral{}
	expectText := true
	for _, p := range parts {
		if s, ok := p.(string); ok && expectText {
			tl.Quasis = append(tl.Quasis, &estree.TemplateElement{Value: estree.TemplateValue{Raw: s, Cooked: s}})
			expectText = false
			continue
		}
		if expectText {
			tl.Quasis = append(tl.Quasis, &estree.TemplateElement{})
		}
		tl.Expressions = append(tl.Expressions, p.(estree.Node))
		expectText = true
	}
	if expectText {
		tl.Quasis = append(tl.Quasis, &estree.TemplateElement{})
	}
	tl.Quasis[len(tl.Quasis)-1].Tail = true
	return tl
}

func Array(elements ...estree.Node) *estree.ArrayExpression {
	return &estree.ArrayExpression{Elements: elements}
}

func Object(props ...estree.Node) *estree.ObjectExpression {
	return &estree.ObjectExpression{Properties: props}
}

// Prop builds `key: value`; key is an identifier name or a key node.
func Prop(key interface{}, value estree.Node) *estree.Property {
	k, computed := propKey(key)
	return &estree.Property{Key: k, Value: value, Kind: "init", Computed: computed}
}

// Shorthand builds `{ name }`.
func Shorthand(name string) *estree.Property {
	return &estree.Property{Key: Ident(name), Value: Ident(name), Kind: "init", Shorthand: true}
}

func Spread(arg estree.Node) *estree.SpreadElement {
	return &estree.SpreadElement{Argument: arg}
}

// Member builds a property access chain: Member(Ident("a"), "b", "c") is
// `a.b.c`. Non-string steps become computed accesses.
func Member(object estree.Node, path ...interface{}) estree.Node {
	for _, step := range path {
		switch s := step.(type) {
		case string:
			object = &estree.MemberExpression{Object: object, Property: Ident(s)}
		case estree.Node:
			object = &estree.MemberExpression{Object: object, Property: s, Computed: true}
		}
	}
	return object
}

// Path parses a dotted name such as "React.createElement" into an
// identifier or member chain.
func Path(dotted string) estree.Node {
	parts := strings.Split(dotted, ".")
	var head estree.Node = Ident(parts[0])
	if parts[0] == "this" {
		head = This()
	}
	steps := make([]interface{}, len(parts)-1)
	for i, p := range parts[1:] {
		steps[i] = p
	}
	return Member(head, steps...)
}

func Call(callee estree.Node, args ...estree.Node) *estree.CallExpression {
	return &estree.CallExpression{Callee: callee, Arguments: args}
}

func New(callee estree.Node, args ...estree.Node) *estree.NewExpression {
	return &estree.NewExpression{Callee: callee, Arguments: args}
}

func Unary(op string, arg estree.Node) *estree.UnaryExpression {
	return &estree.UnaryExpression{Operator: op, Prefix: true, Argument: arg}
}

func Update(op string, prefix bool, arg estree.Node) *estree.UpdateExpression {
	return &estree.UpdateExpression{Operator: op, Prefix: prefix, Argument: arg}
}

func Binary(left estree.Node, op string, right estree.Node) *estree.BinaryExpression {
	return &estree.BinaryExpression{Left: left, Operator: op, Right: right}
}

func Logical(left estree.Node, op string, right estree.Node) *estree.LogicalExpression {
	return &estree.LogicalExpression{Left: left, Operator: op, Right: right}
}

func Assign(left estree.Node, op string, right estree.Node) *estree.AssignmentExpression {
	return &estree.AssignmentExpression{Left: left, Operator: op, Right: right}
}

func Cond(test, consequent, alternate estree.Node) *estree.ConditionalExpression {
	return &estree.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
}

func Seq(exprs ...estree.Node) *estree.SequenceExpression {
	return &estree.SequenceExpression{Expressions: exprs}
}

func Await(arg estree.Node) *estree.AwaitExpression {
	return &estree.AwaitExpression{Argument: arg}
}

// OptionalCall builds `callee?.(args)` wrapped in a chain expression.
func OptionalCall(callee estree.Node, args ...estree.Node) *estree.ChainExpression {
	return &estree.ChainExpression{Expression: &estree.CallExpression{Callee: callee, Arguments: args, Optional: true}}
}

func NonNull(e estree.Node) *estree.TSNonNullExpression {
	return &estree.TSNonNullExpression{Expression: e}
}

func As(e estree.Node) *estree.TSAsExpression {
	return &estree.TSAsExpression{Expression: e}
}

// Patterns

func ArrayPat(elements ...interface{}) *estree.ArrayPattern {
	return &estree.ArrayPattern{Elements: Params(elements...)}
}

// ObjectPat builds `{ a, b }` from shorthand binding names.
func ObjectPat(names ...string) *estree.ObjectPattern {
	props := make([]estree.Node, len(names))
	for i, name := range names {
		props[i] = Shorthand(name)
	}
	return &estree.ObjectPattern{Properties: props}
}

func Rest(arg interface{}) *estree.RestElement {
	return &estree.RestElement{Argument: target(arg)}
}

func Default(left interface{}, right estree.Node) *estree.AssignmentPattern {
	return &estree.AssignmentPattern{Left: target(left), Right: right}
}

// JSX

// Elem builds a JSX element. name may be dotted ("Ctx.Provider") or
// namespaced ("svg:path"). An element without children is self-closing.
func Elem(name string, attrs []estree.Node, children ...estree.Node) *estree.JSXElement {
	el := &estree.JSXElement{
		OpeningElement: &estree.JSXOpeningElement{Name: JSXName(name), Attributes: attrs, SelfClosing: len(children) == 0},
		Children:       children,
	}
	if len(children) > 0 {
		el.ClosingElement = &estree.JSXClosingElement{Name: JSXName(name)}
	}
	return el
}

// Attrs collects attributes for Elem.
func Attrs(attrs ...estree.Node) []estree.Node {
	return attrs
}

// JSXName parses an element name into its JSX name node.
func JSXName(name string) estree.Node {
	if ns, local, ok := strings.Cut(name, ":"); ok {
		return &estree.JSXNamespacedName{Namespace: &estree.JSXIdentifier{Name: ns}, Name: &estree.JSXIdentifier{Name: local}}
	}
	parts := strings.Split(name, ".")
	var n estree.Node = &estree.JSXIdentifier{Name: parts[0]}
	for _, p := range parts[1:] {
		n = &estree.JSXMemberExpression{Object: n, Property: &estree.JSXIdentifier{Name: p}}
	}
	return n
}

func Frag(children ...estree.Node) *estree.JSXFragment {
	return &estree.JSXFragment{
		OpeningFragment: &estree.JSXOpeningFragment{},
		Children:        children,
		ClosingFragment: &estree.JSXClosingFragment{},
	}
}

// Attr builds an attribute; a nil value gives the shorthand `name` form.
func Attr(name string, value estree.Node) *estree.JSXAttribute {
	return &estree.JSXAttribute{Name: JSXName(name), Value: value}
}

// AttrStr builds `name="value"`.
func AttrStr(name, value string) *estree.JSXAttribute {
	return Attr(name, Str(value))
}

// AttrExpr builds `name={expr}`.
func AttrExpr(name string, expr estree.Node) *estree.JSXAttribute {
	return Attr(name, Container(expr))
}

func SpreadAttr(arg estree.Node) *estree.JSXSpreadAttribute {
	return &estree.JSXSpreadAttribute{Argument: arg}
}

func Text(s string) *estree.JSXText {
	return &estree.JSXText{Value: s, Raw: s}
}

// Container builds `{expr}`; a nil expr gives `{}`.
func Container(expr estree.Node) *estree.JSXExpressionContainer {
	if expr == nil {
		expr = &estree.JSXEmptyExpression{}
	}
	return &estree.JSXExpressionContainer{Expression: expr}
}

func SpreadChild(expr estree.Node) *estree.JSXSpreadChild {
	return &estree.JSXSpreadChild{Expression: expr}
}

func target(v interface{}) estree.Node {
	if s, ok := v.(string); ok {
		return Ident(s)
	}
	n, _ := v.(estree.Node)
	return n
}

func optionalIdent(name string) *estree.Identifier {
	if name == "" {
		return nil
	}
	return Ident(name)
}

func propKey(key interface{}) (estree.Node, bool) {
	switch k := key.(type) {
	case string:
		return Ident(k), false
	case *estree.Identifier, *estree.Literal:
		return k.(estree.Node), false
	case estree.Node:
		return k, true
	}
	return nil, false
}

package estreetest

import (
	"fmt"
	"strings"

	"github.com/input-output-hk/jsxlint/estree"
)

// File is a printed tree together with its source text.
type File struct {
	Program *estree.Program
	Source  *estree.SourceCode
}

// Print renders prog to source text, positions every node and links the
// tree. It panics when the tree cannot be linked, which only happens for
// trees that share or cycle nodes.
func Print(prog *estree.Program) File {
	p := &printer{}
	p.node(prog)

	src := estree.NewSourceCode(p.b.String())
	for _, s := range p.spans {
		estree.SetPosition(s.node, s.r, src.Location(s.r))
	}
	if err := estree.Link(prog); err != nil {
		panic(fmt.Sprintf("estreetest: %v", err))
	}
	return File{Program: prog, Source: src}
}

// Source renders prog and returns only the text.
func Source(prog *estree.Program) string {
	return Print(prog).Source.Text()
}

type span struct {
	node estree.Node
	r    estree.Range
}

type printer struct {
	b     strings.Builder
	spans []span
}

func (p *printer) write(parts ...string) {
	for _, s := range parts {
		p.b.WriteString(s)
	}
}

func (p *printer) node(n estree.Node) {
	if estree.IsNil(n) {
		return
	}
	start := p.b.Len()
	p.emit(n)
	p.mark(n, start)
}

func (p *printer) mark(n estree.Node, start int) {
	p.spans = append(p.spans, span{node: n, r: estree.Range{start, p.b.Len()}})
}

// operand prints n, parenthesized when it binds looser than a binary operator.
func (p *printer) operand(n estree.Node) {
	switch n.(type) {
	case *estree.LogicalExpression, *estree.BinaryExpression, *estree.ConditionalExpression,
		*estree.AssignmentExpression, *estree.SequenceExpression, *estree.ArrowFunctionExpression:
		p.write("(")
		p.node(n)
		p.write(")")
	default:
		p.node(n)
	}
}

func (p *printer) list(nodes []estree.Node, sep string) {
	for i, n := range nodes {
		if i > 0 {
			p.write(sep)
		}
		p.node(n)
	}
}

func (p *printer) block(body []estree.Node) {
	p.write("{")
	for _, n := range body {
		p.write("\n")
		p.node(n)
	}
	if len(body) > 0 {
		p.write("\n")
	}
	p.write("}")
}

// function prints the parameter list and body of a function-like node.
func (p *printer) function(params []estree.Node, body estree.Node) {
	p.write("(")
	p.list(params, ", ")
	p.write(") ")
	p.node(body)
}

func (p *printer) emit(n estree.Node) {
	switch n := n.(type) {
	case *estree.Program:
		for i, stmt := range n.Body {
			if i > 0 {
				p.write("\n")
			}
			p.node(stmt)
		}
		p.write("\n")

	case *estree.ExpressionStatement:
		p.node(n.Expression)
		p.write(";")
	case *estree.BlockStatement:
		p.block(n.Body)
	case *estree.ReturnStatement:
		p.write("return")
		if n.Argument != nil {
			p.write(" ")
			p.node(n.Argument)
		}
		p.write(";")
	case *estree.IfStatement:
		p.write("if (")
		p.node(n.Test)
		p.write(") ")
		p.node(n.Consequent)
		if n.Alternate != nil {
			p.write(" else ")
			p.node(n.Alternate)
		}
	case *estree.SwitchStatement:
		p.write("switch (")
		p.node(n.Discriminant)
		p.write(") {")
		for _, c := range n.Cases {
			p.write("\n")
			p.node(c)
		}
		p.write("\n}")
	case *estree.SwitchCase:
		if n.Test == nil {
			p.write("default:")
		} else {
			p.write("case ")
			p.node(n.Test)
			p.write(":")
		}
		for _, stmt := range n.Consequent {
			p.write(" ")
			p.node(stmt)
		}
	case *estree.TryStatement:
		p.write("try ")
		p.node(n.Block)
		if n.Handler != nil {
			p.write(" ")
			p.node(n.Handler)
		}
		if n.Finalizer != nil {
			p.write(" finally ")
			p.node(n.Finalizer)
		}
	case *estree.CatchClause:
		p.write("catch ")
		if n.Param != nil {
			p.write("(")
			p.node(n.Param)
			p.write(") ")
		}
		p.node(n.Body)

	case *estree.VariableDeclaration:
		p.write(n.Kind, " ")
		for i, d := range n.Declarations {
			if i > 0 {
				p.write(", ")
			}
			p.node(d)
		}
		p.write(";")
	case *estree.VariableDeclarator:
		p.node(n.ID)
		if n.Init != nil {
			p.write(" = ")
			p.node(n.Init)
		}
	case *estree.FunctionDeclaration:
		p.functionHead(n.Async, n.Generator, n.ID)
		p.function(n.Params, n.Body)
	case *estree.FunctionExpression:
		p.functionHead(n.Async, n.Generator, n.ID)
		p.function(n.Params, n.Body)
	case *estree.ArrowFunctionExpression:
		if n.Async {
			p.write("async ")
		}
		p.write("(")
		p.list(n.Params, ", ")
		p.write(") => ")
		if _, obj := n.Body.(*estree.ObjectExpression); obj {
			p.write("(")
			p.node(n.Body)
			p.write(")")
		} else {
			p.node(n.Body)
		}
	case *estree.ClassDeclaration:
		p.class(n.ID, n.SuperClass, n.Body)
	case *estree.ClassExpression:
		p.class(n.ID, n.SuperClass, n.Body)
	case *estree.ClassBody:
		p.block(n.Body)
	case *estree.MethodDefinition:
		if n.Static {
			p.write("static ")
		}
		if n.Kind == "get" || n.Kind == "set" {
			p.write(n.Kind, " ")
		}
		p.key(n.Key, n.Computed)
		if n.Value != nil {
			// Method values print without the function keyword.
			start := p.b.Len()
			p.function(n.Value.Params, n.Value.Body)
			p.mark(n.Value, start)
		}
	case *estree.PropertyDefinition:
		if n.Static {
			p.write("static ")
		}
		p.key(n.Key, n.Computed)
		if n.Value != nil {
			p.write(" = ")
			p.node(n.Value)
		}
		p.write(";")
	case *estree.ExportNamedDeclaration:
		p.write("export ")
		p.node(n.Declaration)
	case *estree.ExportDefaultDeclaration:
		p.write("export default ")
		p.node(n.Declaration)
		switch n.Declaration.(type) {
		case *estree.FunctionDeclaration, *estree.ClassDeclaration:
		default:
			p.write(";")
		}

	case *estree.Identifier:
		p.write(n.Name)
	case *estree.ThisExpression:
		p.write("this")
	case *estree.Literal:
		p.write(n.Raw)
	case *estree.TemplateLiteral:
		p.write("`")
		for i, q := range n.Quasis {
			p.node(q)
			if i < len(n.Expressions) {
				p.write("${")
				p.node(n.Expressions[i])
				p.write("}")
			}
		}
		p.write("`")
	case *estree.TemplateElement:
		p.write(n.Value.Raw)
	case *estree.ArrayExpression:
		p.write("[")
		p.list(n.Elements, ", ")
		p.write("]")
	case *estree.ObjectExpression:
		p.object(n.Properties)
	case *estree.Property:
		switch {
		case n.Shorthand:
			// The key and value are the same token.
			start := p.b.Len()
			p.node(n.Value)
			p.mark(n.Key, start)
		case n.Method:
			p.key(n.Key, n.Computed)
			if fn, ok := n.Value.(*estree.FunctionExpression); ok {
				start := p.b.Len()
				p.function(fn.Params, fn.Body)
				p.mark(fn, start)
			}
		default:
			p.key(n.Key, n.Computed)
			p.write(": ")
			p.node(n.Value)
		}
	case *estree.SpreadElement:
		p.write("...")
		p.node(n.Argument)
	case *estree.MemberExpression:
		p.callee(n.Object)
		switch {
		case n.Computed:
			if n.Optional {
				p.write("?.")
			}
			p.write("[")
			p.node(n.Property)
			p.write("]")
		case n.Optional:
			p.write("?.")
			p.node(n.Property)
		default:
			p.write(".")
			p.node(n.Property)
		}
	case *estree.CallExpression:
		p.callee(n.Callee)
		if n.Optional {
			p.write("?.")
		}
		p.write("(")
		p.list(n.Arguments, ", ")
		p.write(")")
	case *estree.NewExpression:
		p.write("new ")
		p.callee(n.Callee)
		p.write("(")
		p.list(n.Arguments, ", ")
		p.write(")")
	case *estree.UnaryExpression:
		p.write(n.Operator)
		if len(n.Operator) > 1 && n.Operator != "!!" {
			p.write(" ")
		}
		p.operand(n.Argument)
	case *estree.UpdateExpression:
		if n.Prefix {
			p.write(n.Operator)
			p.node(n.Argument)
		} else {
			p.node(n.Argument)
			p.write(n.Operator)
		}
	case *estree.BinaryExpression:
		p.operand(n.Left)
		p.write(" ", n.Operator, " ")
		p.operand(n.Right)
	case *estree.LogicalExpression:
		p.operand(n.Left)
		p.write(" ", n.Operator, " ")
		p.operand(n.Right)
	case *estree.AssignmentExpression:
		p.node(n.Left)
		p.write(" ", n.Operator, " ")
		p.node(n.Right)
	case *estree.ConditionalExpression:
		p.operand(n.Test)
		p.write(" ? ")
		p.operand(n.Consequent)
		p.write(" : ")
		p.operand(n.Alternate)
	case *estree.SequenceExpression:
		p.list(n.Expressions, ", ")
	case *estree.AwaitExpression:
		p.write("await ")
		p.operand(n.Argument)
	case *estree.ChainExpression:
		p.node(n.Expression)
	case *estree.TSNonNullExpression:
		p.callee(n.Expression)
		p.write("!")
	case *estree.TSAsExpression:
		p.operand(n.Expression)
		p.write(" as unknown")

	case *estree.ArrayPattern:
		p.write("[")
		p.list(n.Elements, ", ")
		p.write("]")
	case *estree.ObjectPattern:
		p.object(n.Properties)
	case *estree.RestElement:
		p.write("...")
		p.node(n.Argument)
	case *estree.AssignmentPattern:
		p.node(n.Left)
		p.write(" = ")
		p.node(n.Right)

	case *estree.JSXElement:
		p.node(n.OpeningElement)
		for _, c := range n.Children {
			p.node(c)
		}
		p.node(n.ClosingElement)
	case *estree.JSXFragment:
		p.node(n.OpeningFragment)
		for _, c := range n.Children {
			p.node(c)
		}
		p.node(n.ClosingFragment)
	case *estree.JSXOpeningElement:
		p.write("<")
		p.node(n.Name)
		for _, a := range n.Attributes {
			p.write(" ")
			p.node(a)
		}
		if n.SelfClosing {
			p.write(" />")
		} else {
			p.write(">")
		}
	case *estree.JSXClosingElement:
		p.write("</")
		p.node(n.Name)
		p.write(">")
	case *estree.JSXOpeningFragment:
		p.write("<>")
	case *estree.JSXClosingFragment:
		p.write("</>")
	case *estree.JSXAttribute:
		p.node(n.Name)
		if n.Value != nil {
			p.write("=")
			p.node(n.Value)
		}
	case *estree.JSXSpreadAttribute:
		p.write("{...")
		p.node(n.Argument)
		p.write("}")
	case *estree.JSXIdentifier:
		p.write(n.Name)
	case *estree.JSXMemberExpression:
		p.node(n.Object)
		p.write(".")
		p.node(n.Property)
	case *estree.JSXNamespacedName:
		p.node(n.Namespace)
		p.write(":")
		p.node(n.Name)
	case *estree.JSXExpressionContainer:
		p.write("{")
		p.node(n.Expression)
		p.write("}")
	case *estree.JSXEmptyExpression:
	case *estree.JSXText:
		p.write(n.Raw)
	case *estree.JSXSpreadChild:
		p.write("{...")
		p.node(n.Expression)
		p.write("}")

	case *estree.Unknown:
		p.write("/* ", n.Kind, " */")
	default:
		panic(fmt.Sprintf("estreetest: cannot print %s", n.Type()))
	}
}

func (p *printer) functionHead(async, generator bool, id *estree.Identifier) {
	if async {
		p.write("async ")
	}
	p.write("function")
	if generator {
		p.write("*")
	}
	if id != nil {
		p.write(" ")
		p.node(id)
	}
}

func (p *printer) class(id *estree.Identifier, superClass estree.Node, body *estree.ClassBody) {
	p.write("class")
	if id != nil {
		p.write(" ")
		p.node(id)
	}
	if superClass != nil {
		p.write(" extends ")
		p.node(superClass)
	}
	p.write(" ")
	p.node(body)
}

func (p *printer) key(key estree.Node, computed bool) {
	if computed {
		p.write("[")
		p.node(key)
		p.write("]")
		return
	}
	p.node(key)
}

func (p *printer) object(props []estree.Node) {
	if len(props) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	p.list(props, ", ")
	p.write(" }")
}

// callee prints the object of a member access or call.
func (p *printer) callee(n estree.Node) {
	switch n.(type) {
	case *estree.Identifier, *estree.MemberExpression, *estree.CallExpression, *estree.ThisExpression,
		*estree.ChainExpression, *estree.TSNonNullExpression, *estree.Literal, *estree.ArrayExpression:
		p.node(n)
	default:
		p.write("(")
		p.node(n)
		p.write(")")
	}
}

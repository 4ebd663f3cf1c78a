package scope

import (
	"github.com/input-output-hk/jsxlint/estree"
)

// Analyze builds a scope table for a linked tree by lexical analysis. It
// covers module, function, block, switch, catch and class scopes, `var`
// hoisting to the enclosing function, parameter and pattern bindings, and
// JSX component references. It is a fallback for hosts that have no
// analyzer output; Decode is preferred when an analyzer ran.
func Analyze(prog *estree.Program) (*Table, error) {
	a := &analyzer{table: NewTable()}
	if err := a.program(prog); err != nil {
		return nil, err
	}
	a.table.Resolve()
	return a.table, nil
}

type analyzer struct {
	table *Table
	err   error
}

func (a *analyzer) define(kind Kind, block estree.Node, upper *Scope) *Scope {
	s, err := a.table.Define(kind, block, upper)
	if err != nil && a.err == nil {
		a.err = err
	}
	if s == nil {
		return upper
	}
	return s
}

func (a *analyzer) program(prog *estree.Program) error {
	s := a.define(KindModule, prog, nil)
	for _, stmt := range prog.Body {
		a.visit(stmt, s)
	}
	return a.err
}

// functionScope returns the nearest scope that `var` declarations hoist to.
func functionScope(s *Scope) *Scope {
	for sc := s; sc != nil; sc = sc.Upper {
		switch sc.Kind {
		case KindFunction, KindModule, KindGlobal:
			return sc
		}
	}
	return s
}

func (a *analyzer) visit(n estree.Node, s *Scope) {
	if estree.IsNil(n) {
		return
	}

	switch n := n.(type) {
	case *estree.Identifier:
		s.AddReference(n, Read, nil)

	case *estree.VariableDeclaration:
		target := s
		if n.Kind == "var" {
			target = functionScope(s)
		}
		for _, d := range n.Declarations {
			a.bind(d.ID, target, s)
			if d.Init != nil {
				for _, id := range bindingIdentifiers(d.ID) {
					s.AddReference(id, Write, nil)
				}
				a.visit(d.Init, s)
			}
		}

	case *estree.FunctionDeclaration:
		if n.ID != nil {
			s.Declare(n.ID.Name, n.ID)
		}
		a.function(n, nil, n.Params, n.Body, s)
	case *estree.FunctionExpression:
		a.function(n, n.ID, n.Params, n.Body, s)
	case *estree.ArrowFunctionExpression:
		a.function(n, nil, n.Params, n.Body, s)

	case *estree.ClassDeclaration:
		if n.ID != nil {
			s.Declare(n.ID.Name, n.ID)
		}
		a.visit(n.SuperClass, s)
		a.visit(n.Body, a.define(KindClass, n, s))
	case *estree.ClassExpression:
		a.visit(n.SuperClass, s)
		inner := a.define(KindClass, n, s)
		if n.ID != nil {
			inner.Declare(n.ID.Name, n.ID)
		}
		a.visit(n.Body, inner)
	case *estree.MethodDefinition:
		if n.Computed {
			a.visit(n.Key, s)
		}
		a.visit(n.Value, s)
	case *estree.PropertyDefinition:
		if n.Computed {
			a.visit(n.Key, s)
		}
		a.visit(n.Value, s)

	case *estree.BlockStatement:
		inner := a.define(KindBlock, n, s)
		for _, stmt := range n.Body {
			a.visit(stmt, inner)
		}
	case *estree.SwitchStatement:
		a.visit(n.Discriminant, s)
		inner := a.define(KindSwitch, n, s)
		for _, c := range n.Cases {
			a.visit(c, inner)
		}
	case *estree.CatchClause:
		inner := a.define(KindCatch, n, s)
		a.bind(n.Param, inner, inner)
		if n.Body != nil {
			for _, stmt := range n.Body.Body {
				a.visit(stmt, inner)
			}
		}

	case *estree.MemberExpression:
		a.visit(n.Object, s)
		if n.Computed {
			a.visit(n.Property, s)
		}
	case *estree.Property:
		if n.Computed {
			a.visit(n.Key, s)
		}
		a.visit(n.Value, s)
	case *estree.AssignmentExpression:
		flags := Write
		if n.Operator != "=" {
			flags = ReadWrite
		}
		a.writes(n.Left, s, flags)
		a.visit(n.Right, s)
	case *estree.UpdateExpression:
		if id, ok := n.Argument.(*estree.Identifier); ok {
			s.AddReference(id, ReadWrite, nil)
		} else {
			a.visit(n.Argument, s)
		}

	case *estree.JSXOpeningElement:
		a.jsxName(n.Name, s)
		for _, attr := range n.Attributes {
			a.visit(attr, s)
		}
	case *estree.JSXClosingElement:
	case *estree.JSXAttribute:
		a.visit(n.Value, s)

	default:
		for _, child := range estree.Children(n) {
			a.visit(child, s)
		}
	}
}

func (a *analyzer) function(fn estree.Node, id *estree.Identifier, params []estree.Node, body estree.Node, s *Scope) {
	inner := a.define(KindFunction, fn, s)
	if id != nil {
		inner.Declare(id.Name, id)
	}
	for _, p := range params {
		a.bind(p, inner, inner)
	}
	// The body block shares the function scope.
	if block, ok := body.(*estree.BlockStatement); ok {
		for _, stmt := range block.Body {
			a.visit(stmt, inner)
		}
		return
	}
	a.visit(body, inner)
}

// bind declares the identifiers of a binding pattern in target. Default
// values and computed keys are visited as expressions in s.
func (a *analyzer) bind(pattern estree.Node, target, s *Scope) {
	switch p := pattern.(type) {
	case *estree.Identifier:
		target.Declare(p.Name, p)
	case *estree.ObjectPattern:
		for _, prop := range p.Properties {
			switch prop := prop.(type) {
			case *estree.Property:
				if prop.Computed {
					a.visit(prop.Key, s)
				}
				a.bind(prop.Value, target, s)
			default:
				a.bind(prop, target, s)
			}
		}
	case *estree.ArrayPattern:
		for _, el := range p.Elements {
			a.bind(el, target, s)
		}
	case *estree.RestElement:
		a.bind(p.Argument, target, s)
	case *estree.AssignmentPattern:
		a.bind(p.Left, target, s)
		a.visit(p.Right, s)
	}
}

// writes records write references for the identifiers an assignment target
// assigns to. Member targets are visited as reads of their object.
func (a *analyzer) writes(target estree.Node, s *Scope, flags ReferenceFlag) {
	switch t := target.(type) {
	case *estree.Identifier:
		s.AddReference(t, flags, nil)
	case *estree.ObjectPattern:
		for _, prop := range t.Properties {
			if p, ok := prop.(*estree.Property); ok {
				if p.Computed {
					a.visit(p.Key, s)
				}
				a.writes(p.Value, s, flags)
			} else {
				a.writes(prop, s, flags)
			}
		}
	case *estree.ArrayPattern:
		for _, el := range t.Elements {
			a.writes(el, s, flags)
		}
	case *estree.RestElement:
		a.writes(t.Argument, s, flags)
	case *estree.AssignmentPattern:
		a.writes(t.Left, s, flags)
		a.visit(t.Right, s)
	default:
		a.visit(target, s)
	}
}

// jsxName records a reference for component element names: capitalized
// identifiers and the root object of member names. Lowercase names are
// intrinsic elements.
func (a *analyzer) jsxName(name estree.Node, s *Scope) {
	switch n := name.(type) {
	case *estree.JSXIdentifier:
		if n.Name != "" && (n.Name[0] < 'a' || n.Name[0] > 'z') {
			s.AddReference(n, Read, nil)
		}
	case *estree.JSXMemberExpression:
		root := n.Object
		for {
			m, ok := root.(*estree.JSXMemberExpression)
			if !ok {
				break
			}
			root = m.Object
		}
		if id, ok := root.(*estree.JSXIdentifier); ok {
			s.AddReference(id, Read, nil)
		}
	}
}

// bindingIdentifiers returns the identifiers a binding pattern declares.
func bindingIdentifiers(pattern estree.Node) []*estree.Identifier {
	switch p := pattern.(type) {
	case *estree.Identifier:
		return []*estree.Identifier{p}
	case *estree.ObjectPattern:
		var out []*estree.Identifier
		for _, prop := range p.Properties {
			if kv, ok := prop.(*estree.Property); ok {
				out = append(out, bindingIdentifiers(kv.Value)...)
			} else {
				out = append(out, bindingIdentifiers(prop)...)
			}
		}
		return out
	case *estree.ArrayPattern:
		var out []*estree.Identifier
		for _, el := range p.Elements {
			out = append(out, bindingIdentifiers(el)...)
		}
		return out
	case *estree.RestElement:
		return bindingIdentifiers(p.Argument)
	case *estree.AssignmentPattern:
		return bindingIdentifiers(p.Left)
	}
	return nil
}

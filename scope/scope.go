// Package scope models the scope table an external scope analyzer produces
// for a syntax tree, and answers binding questions about it through
// Resolver. Tables come from Decode (analyzer JSON output), Analyze (a
// lexical analysis of the tree) or the builder methods.
package scope

import (
	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
)

// Kind classifies a scope.
type Kind string

const (
	KindGlobal   Kind = "global"
	KindModule   Kind = "module"
	KindFunction Kind = "function"
	KindBlock    Kind = "block"
	KindSwitch   Kind = "switch"
	KindCatch    Kind = "catch"
	KindClass    Kind = "class"
)

// ReferenceFlag records how a reference uses its variable.
type ReferenceFlag uint8

const (
	Read ReferenceFlag = 1 << iota
	Write
	ReadWrite = Read | Write
)

// Variable is a name bound in a scope.
type Variable struct {
	Name string
	// Identifiers are the binding occurrences in declaration order.
	Identifiers []estree.Node
	Scope       *Scope
}

// Reference is one use of a name.
type Reference struct {
	Identifier estree.Node
	From       *Scope
	// Resolved is nil for references to undeclared (global) names.
	Resolved *Variable
	Flags    ReferenceFlag
}

// IsRead reports whether the reference reads the variable.
func (r *Reference) IsRead() bool { return r.Flags&Read != 0 }

// IsWrite reports whether the reference writes the variable.
func (r *Reference) IsWrite() bool { return r.Flags&Write != 0 }

// Scope is the binding environment owned by one block node.
type Scope struct {
	Kind     Kind
	Block    estree.Node
	Upper    *Scope
	Children []*Scope
	// Variables in declaration order.
	Variables []*Variable
	// References made directly in this scope, excluding nested scopes.
	References []*Reference

	set   map[string]*Variable
	table *Table
}

// Lookup returns the variable called name declared in s itself.
func (s *Scope) Lookup(name string) *Variable {
	return s.set[name]
}

// Has reports whether name is declared in s itself.
func (s *Scope) Has(name string) bool {
	_, ok := s.set[name]
	return ok
}

// Resolve returns the variable called name visible from s, searching
// enclosing scopes.
func (s *Scope) Resolve(name string) *Variable {
	for sc := s; sc != nil; sc = sc.Upper {
		if v := sc.set[name]; v != nil {
			return v
		}
	}
	return nil
}

// Declare binds name in s, recording id as a binding occurrence. Declaring
// an existing name appends id to its identifiers.
func (s *Scope) Declare(name string, id estree.Node) *Variable {
	v := s.set[name]
	if v == nil {
		v = &Variable{Name: name, Scope: s}
		s.set[name] = v
		s.Variables = append(s.Variables, v)
	}
	if id != nil {
		v.Identifiers = append(v.Identifiers, id)
		s.table.bindings[id] = v
	}
	return v
}

// AddReference records a use of id in s. resolved may be nil; Table.Resolve
// fills in unresolved references later.
func (s *Scope) AddReference(id estree.Node, flags ReferenceFlag, resolved *Variable) *Reference {
	ref := &Reference{Identifier: id, From: s, Resolved: resolved, Flags: flags}
	s.References = append(s.References, ref)
	if id != nil {
		s.table.refs[id] = ref
	}
	return ref
}

// Table maps scope-owning nodes to their scopes.
type Table struct {
	scopes   []*Scope
	byBlock  map[estree.Node]*Scope
	bindings map[estree.Node]*Variable
	refs     map[estree.Node]*Reference
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		byBlock:  make(map[estree.Node]*Scope),
		bindings: make(map[estree.Node]*Variable),
		refs:     make(map[estree.Node]*Reference),
	}
}

// Define creates the scope owned by block, nested in upper (nil for the
// outermost scope). A block owns at most one scope.
func (t *Table) Define(kind Kind, block estree.Node, upper *Scope) (*Scope, error) {
	if estree.IsNil(block) {
		return nil, errors.New(errors.CodeInvalidInput, "scope block must not be nil")
	}
	if _, exists := t.byBlock[block]; exists {
		return nil, errors.Newf(errors.CodeAlreadyExists, "%s at %s already owns a scope", block.Type(), block.Range())
	}
	s := &Scope{Kind: kind, Block: block, Upper: upper, set: make(map[string]*Variable), table: t}
	if upper != nil {
		upper.Children = append(upper.Children, s)
	}
	t.scopes = append(t.scopes, s)
	t.byBlock[block] = s
	return s, nil
}

// Acquire returns the scope owned by block, or nil.
func (t *Table) Acquire(block estree.Node) *Scope {
	if t == nil || estree.IsNil(block) {
		return nil
	}
	return t.byBlock[block]
}

// Innermost returns the closest scope enclosing n, n's own scope included.
func (t *Table) Innermost(n estree.Node) *Scope {
	for ; !estree.IsNil(n); n = n.Parent() {
		if s := t.Acquire(n); s != nil {
			return s
		}
	}
	return nil
}

// Scopes returns every scope in creation order.
func (t *Table) Scopes() []*Scope {
	return t.scopes
}

// Reference returns the reference made by identifier id, or nil.
func (t *Table) Reference(id estree.Node) *Reference {
	if t == nil {
		return nil
	}
	return t.refs[id]
}

// Binding returns the variable id declares, or nil when id is not a binding
// occurrence.
func (t *Table) Binding(id estree.Node) *Variable {
	if t == nil {
		return nil
	}
	return t.bindings[id]
}

// Resolve resolves every unresolved reference by name through the scope
// chain it was made in.
func (t *Table) Resolve() {
	for _, s := range t.scopes {
		for _, ref := range s.References {
			if ref.Resolved != nil {
				continue
			}
			if name := identifierName(ref.Identifier); name != "" {
				ref.Resolved = s.Resolve(name)
			}
		}
	}
}

func identifierName(n estree.Node) string {
	switch n := n.(type) {
	case *estree.Identifier:
		return n.Name
	case *estree.JSXIdentifier:
		return n.Name
	}
	return ""
}

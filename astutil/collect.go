package astutil

import (
	"slices"

	"github.com/input-output-hk/jsxlint/estree"
)

// Collector gathers nested nodes of a subtree and memoizes the result per
// node. Trees must not change while a collector is in use; the dispatcher
// creates one per rule run and drops it when the run ends. A Collector is not
// safe for concurrent use.
type Collector struct {
	identifiers map[estree.Node][]*estree.Identifier
	returns     map[estree.Node][]*estree.ReturnStatement
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		identifiers: make(map[estree.Node][]*estree.Identifier),
		returns:     make(map[estree.Node][]*estree.ReturnStatement),
	}
}

// identifierFields are the list properties through which identifiers are
// collected: call arguments, array elements, object properties and template
// or sequence expressions.
var identifierFields = []string{"arguments", "elements", "properties", "expressions"}

// NestedIdentifiers returns the identifiers reachable from n through call
// arguments, array elements, object property values, template expressions,
// spread arguments, member-expression objects and unary, chain or non-null
// wrappers, in depth-first pre-order. n itself is included when it is an
// identifier.
func (c *Collector) NestedIdentifiers(n estree.Node) []*estree.Identifier {
	return slices.Clone(c.nestedIdentifiers(n))
}

func (c *Collector) nestedIdentifiers(n estree.Node) []*estree.Identifier {
	if estree.IsNil(n) {
		return nil
	}
	if cached, ok := c.identifiers[n]; ok {
		return cached
	}

	var out []*estree.Identifier
	if id, ok := n.(*estree.Identifier); ok {
		out = append(out, id)
	}
	for _, name := range identifierFields {
		if list, ok := listField(n, name); ok {
			for _, item := range list {
				out = append(out, c.nestedIdentifiers(item)...)
			}
		}
	}
	switch n := n.(type) {
	case *estree.Property:
		out = append(out, c.nestedIdentifiers(n.Value)...)
	case *estree.SpreadElement:
		out = append(out, c.nestedIdentifiers(n.Argument)...)
	case *estree.MemberExpression:
		out = append(out, c.nestedIdentifiers(n.Object)...)
	case *estree.UnaryExpression:
		out = append(out, c.nestedIdentifiers(n.Argument)...)
	case *estree.ChainExpression:
		out = append(out, c.nestedIdentifiers(n.Expression)...)
	case *estree.TSNonNullExpression:
		out = append(out, c.nestedIdentifiers(n.Expression)...)
	}

	c.identifiers[n] = out
	return out
}

// returnFields are the properties searched for return statements. Boolean
// properties of the same name, such as an arrow's "expression" flag, are
// skipped.
var returnFields = []string{"body", "consequent", "alternate", "cases", "block", "handler", "finalizer", "expression", "test"}

// NestedReturnStatements returns the return statements reachable from n
// through statement bodies, branches, switch cases, try blocks and
// expression wrappers, in depth-first pre-order. Nested function bodies are
// searched too.
func (c *Collector) NestedReturnStatements(n estree.Node) []*estree.ReturnStatement {
	return slices.Clone(c.nestedReturns(n))
}

func (c *Collector) nestedReturns(n estree.Node) []*estree.ReturnStatement {
	if estree.IsNil(n) {
		return nil
	}
	if cached, ok := c.returns[n]; ok {
		return cached
	}

	var out []*estree.ReturnStatement
	if ret, ok := n.(*estree.ReturnStatement); ok {
		out = append(out, ret)
	}
	for _, name := range returnFields {
		v, ok := estree.Field(n, name)
		if !ok {
			continue
		}
		switch v := v.(type) {
		case estree.Node:
			out = append(out, c.nestedReturns(v)...)
		case []estree.Node:
			for _, item := range v {
				out = append(out, c.nestedReturns(item)...)
			}
		}
	}

	c.returns[n] = out
	return out
}

func listField(n estree.Node, name string) ([]estree.Node, bool) {
	v, ok := estree.Field(n, name)
	if !ok {
		return nil, false
	}
	list, ok := v.([]estree.Node)
	return list, ok
}

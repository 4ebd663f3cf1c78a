// Package pattern matches syntax-tree nodes against declarative shape
// descriptions. A Pattern names an optional node type and a set of field
// constraints; fields the pattern does not mention are ignored, and a field
// the node does not have is a non-match rather than an error.
//
//	createElement := pattern.Of(estree.TypeCallExpression, pattern.Fields{
//		"callee": pattern.Of(estree.TypeMemberExpression, pattern.Fields{
//			"object":   pattern.Shape(pattern.Fields{"name": "React"}),
//			"property": pattern.Shape(pattern.Fields{"name": "createElement"}),
//		}),
//	})
//	if createElement.Match(node) { ... }
package pattern

import (
	"fmt"
	"sort"
	"strings"

	"github.com/input-output-hk/jsxlint/estree"
)

// Fields maps ESTree property names to constraints. A value may be a
// *Pattern (the field must hold a matching node), a Constraint, or a plain
// value, which is shorthand for Eq(value).
type Fields map[string]interface{}

type field struct {
	name string
	c    Constraint
}

// Pattern is an immutable node shape.
type Pattern struct {
	typ    estree.Type
	typed  bool
	fields []field
}

// Of returns a pattern matching nodes of type t whose fields satisfy fields.
func Of(t estree.Type, fields Fields) *Pattern {
	p := Shape(fields)
	p.typ, p.typed = t, true
	return p
}

// Shape returns a pattern matching nodes of any type whose fields satisfy
// fields.
func Shape(fields Fields) *Pattern {
	p := &Pattern{fields: make([]field, 0, len(fields))}
	for name, v := range fields {
		p.fields = append(p.fields, field{name: name, c: constraintOf(v)})
	}
	sort.Slice(p.fields, func(i, j int) bool { return p.fields[i].name < p.fields[j].name })
	return p
}

// Match reports whether n satisfies p. A nil node never matches.
func Match(n estree.Node, p *Pattern) bool {
	return p.Match(n)
}

// Match reports whether n satisfies p. A nil node never matches.
func (p *Pattern) Match(n estree.Node) bool {
	if estree.IsNil(n) {
		return false
	}
	if p.typed && n.Type() != p.typ {
		return false
	}
	for _, f := range p.fields {
		v, ok := estree.Field(n, f.name)
		if !ok || !f.c.match(v) {
			return false
		}
	}
	return true
}

// Test adapts p to a node predicate.
func (p *Pattern) Test() func(estree.Node) bool {
	return p.Match
}

// With returns a copy of p whose constraint on name is replaced by v.
func (p *Pattern) With(name string, v interface{}) *Pattern {
	out := &Pattern{typ: p.typ, typed: p.typed, fields: make([]field, 0, len(p.fields)+1)}
	replaced := false
	for _, f := range p.fields {
		if f.name == name {
			f = field{name: name, c: constraintOf(v)}
			replaced = true
		}
		out.fields = append(out.fields, f)
	}
	if !replaced {
		out.fields = append(out.fields, field{name: name, c: constraintOf(v)})
		sort.Slice(out.fields, func(i, j int) bool { return out.fields[i].name < out.fields[j].name })
	}
	return out
}

// String renders the pattern for diagnostics and test failures.
func (p *Pattern) String() string {
	var b strings.Builder
	if p.typed {
		b.WriteString(p.typ.String())
	} else {
		b.WriteString("*")
	}
	b.WriteString("{")
	for i, f := range p.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", f.name, f.c)
	}
	b.WriteString("}")
	return b.String()
}

// Describe returns the pattern that exactly describes n: its type and every
// field, recursively.
func Describe(n estree.Node) *Pattern {
	if estree.IsNil(n) {
		return nil
	}
	p := &Pattern{typ: n.Type(), typed: true}
	for _, name := range estree.FieldNames(n.Type()) {
		v, _ := estree.Field(n, name)
		p.fields = append(p.fields, field{name: name, c: describeValue(v)})
	}
	sort.Slice(p.fields, func(i, j int) bool { return p.fields[i].name < p.fields[j].name })
	return p
}

func describeValue(v interface{}) Constraint {
	switch v := v.(type) {
	case estree.Node:
		return nodeConstraint{Describe(v)}
	case []estree.Node:
		cs := make([]interface{}, len(v))
		for i, child := range v {
			if child == nil {
				cs[i] = Absent()
			} else {
				cs[i] = Describe(child)
			}
		}
		return Elements(cs...)
	default:
		return Eq(v)
	}
}

// Package astutil provides the node predicates and tree navigation helpers
// that rules are built from. Every function is total: nil nodes (including
// typed nil pointers for absent optional children) never match.
package astutil

import (
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/pattern"
)

// Predicate reports whether a node has some property.
type Predicate func(estree.Node) bool

// Is reports whether n is a node of type t.
func Is(n estree.Node, t estree.Type) bool {
	return !estree.IsNil(n) && n.Type() == t
}

// IsOneOf reports whether n's type is one of types. It stops at the first
// matching type; an empty list never matches.
func IsOneOf(n estree.Node, types ...estree.Type) bool {
	if estree.IsNil(n) {
		return false
	}
	nt := n.Type()
	for _, t := range types {
		if nt == t {
			return true
		}
	}
	return false
}

// OfType returns a predicate for Is(n, t).
func OfType(t estree.Type) Predicate {
	return func(n estree.Node) bool { return Is(n, t) }
}

// OneOf returns a predicate for IsOneOf(n, types...).
func OneOf(types ...estree.Type) Predicate {
	return func(n estree.Node) bool { return IsOneOf(n, types...) }
}

// IsIdentifierNamed reports whether n is an Identifier called name.
func IsIdentifierNamed(n estree.Node, name string) bool {
	id, ok := n.(*estree.Identifier)
	return ok && id != nil && id.Name == name
}

// IsIdentifierNamedOneOf reports whether n is an Identifier whose name is one
// of names.
func IsIdentifierNamedOneOf(n estree.Node, names ...string) bool {
	id, ok := n.(*estree.Identifier)
	if !ok || id == nil {
		return false
	}
	for _, name := range names {
		if id.Name == name {
			return true
		}
	}
	return false
}

// IsLiteralWithValue reports whether n is a Literal whose value equals v.
// Numbers compare by value; nil matches the null literal.
func IsLiteralWithValue(n estree.Node, v interface{}) bool {
	lit, ok := n.(*estree.Literal)
	if !ok || lit == nil {
		return false
	}
	if v == nil {
		return IsNullLiteral(n)
	}
	return pattern.Equal(v, lit.Value)
}

// IsNullLiteral reports whether n is the `null` literal.
func IsNullLiteral(n estree.Node) bool {
	lit, ok := n.(*estree.Literal)
	return ok && lit != nil && lit.Value == nil && lit.Raw == "null"
}

// IsStringLiteral reports whether n is a Literal holding a string.
func IsStringLiteral(n estree.Node) bool {
	lit, ok := n.(*estree.Literal)
	if !ok || lit == nil {
		return false
	}
	_, isString := lit.Value.(string)
	return isString
}

// IsFunction reports whether n is a function declaration or expression.
func IsFunction(n estree.Node) bool {
	return IsOneOf(n,
		estree.TypeArrowFunctionExpression,
		estree.TypeFunctionDeclaration,
		estree.TypeFunctionExpression,
	)
}

// IsDestructuringPattern reports whether a parameter node destructures its
// argument.
func IsDestructuringPattern(n estree.Node) bool {
	return IsOneOf(n,
		estree.TypeArrayPattern,
		estree.TypeAssignmentPattern,
		estree.TypeObjectPattern,
		estree.TypeRestElement,
	)
}

// IsJSX reports whether n is a JSX element or fragment.
func IsJSX(n estree.Node) bool {
	return IsOneOf(n, estree.TypeJSXElement, estree.TypeJSXFragment)
}

// IsPropertyWithKey reports whether n is an object property whose key is the
// identifier key.
func IsPropertyWithKey(n estree.Node, key string) bool {
	prop, ok := n.(*estree.Property)
	return ok && prop != nil && IsIdentifierNamed(prop.Key, key)
}

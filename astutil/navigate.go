package astutil

import (
	"github.com/input-output-hk/jsxlint/estree"
)

// WalkUpWhile follows parent links from n while the parent's type is one of
// allowed, and returns the last node reached. It returns n itself when the
// parent is not allowed.
func WalkUpWhile(n estree.Node, allowed ...estree.Type) estree.Node {
	if estree.IsNil(n) {
		return nil
	}
	for {
		parent := n.Parent()
		if !IsOneOf(parent, allowed...) {
			return n
		}
		n = parent
	}
}

// WalkUpUntil returns the nearest proper ancestor of n satisfying pred. The
// search stops, returning nil, at the root or at a Program node; Program is
// never passed to pred.
func WalkUpUntil(n estree.Node, pred Predicate) estree.Node {
	if estree.IsNil(n) {
		return nil
	}
	for parent := n.Parent(); !estree.IsNil(parent); parent = parent.Parent() {
		if parent.Type() == estree.TypeProgram {
			return nil
		}
		if pred(parent) {
			return parent
		}
	}
	return nil
}

// Ancestors returns the ancestors of n, root first.
func Ancestors(n estree.Node) []estree.Node {
	if estree.IsNil(n) {
		return nil
	}
	var out []estree.Node
	for parent := n.Parent(); !estree.IsNil(parent); parent = parent.Parent() {
		out = append(out, parent)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FunctionAncestor returns the outermost ancestor of n that is a function
// declaration, or a function expression bound to a variable by name.
func FunctionAncestor(n estree.Node) estree.Node {
	for _, a := range Ancestors(n) {
		if Is(a, estree.TypeFunctionDeclaration) {
			return a
		}
		if !IsFunction(a) {
			continue
		}
		if decl, ok := a.Parent().(*estree.VariableDeclarator); ok && Is(decl.ID, estree.TypeIdentifier) {
			return a
		}
	}
	return nil
}

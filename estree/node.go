package estree

import (
	"fmt"
	"reflect"

	"github.com/input-output-hk/jsxlint/errors"
)

// Node is a syntax-tree node. The interface is closed: only the node structs
// declared in this package implement it.
type Node interface {
	// Type returns the node's kind.
	Type() Type
	// Parent returns the enclosing node, or nil for the root.
	Parent() Node
	// Range returns the node's byte offsets in the source text.
	Range() Range
	// Loc returns the node's line/column span.
	Loc() SourceLocation

	header() *base
}

// Position is a point in the source text.
type Position struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 0-based column
}

// SourceLocation is a line/column span.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Range is a half-open [start, end) byte offset span.
type Range [2]int

// Start returns the first offset of the range.
func (r Range) Start() int { return r[0] }

// End returns the offset just past the range.
func (r Range) End() int { return r[1] }

// Contains reports whether other lies within r.
func (r Range) Contains(other Range) bool {
	return r[0] <= other[0] && other[1] <= r[1]
}

// String returns the range as "start:end".
func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r[0], r[1])
}

// base holds the state shared by every node.
type base struct {
	span   Range
	loc    SourceLocation
	parent Node
}

func (b *base) Parent() Node        { return b.parent }
func (b *base) Range() Range        { return b.span }
func (b *base) Loc() SourceLocation { return b.loc }
func (b *base) header() *base       { return b }

// SetPosition records the source span of n. Parsers and tree builders call it
// while constructing a tree; the tree must not be modified once linked and
// handed to rules.
func SetPosition(n Node, r Range, loc SourceLocation) {
	h := n.header()
	h.span = r
	h.loc = loc
}

// Link sets the parent of every node reachable from root. The root's parent is
// cleared. It fails with CodeTraversal when a node is reachable twice, which
// covers both cycles and subtrees shared between parents.
func Link(root Node) error {
	if root == nil {
		return nil
	}
	root.header().parent = nil
	seen := map[Node]struct{}{root: {}}
	var link func(n Node) error
	link = func(n Node) error {
		for _, child := range Children(n) {
			if _, dup := seen[child]; dup {
				return errors.WrapWithContext(
					errors.New(errors.CodeTraversal, "node reachable from more than one parent"),
					errors.CodeTraversal,
					"failed to link syntax tree",
					map[string]interface{}{"node": child.Type().String(), "range": child.Range().String()},
				)
			}
			seen[child] = struct{}{}
			child.header().parent = n
			if err := link(child); err != nil {
				return err
			}
		}
		return nil
	}
	return link(root)
}

// Validate checks the structural invariants of a linked tree: the root has no
// parent, every child points back at the node it hangs from, and no node is
// reachable twice.
func Validate(root Node) error {
	if root == nil {
		return nil
	}
	if root.Parent() != nil {
		return errors.New(errors.CodeTraversal, "root node has a parent")
	}
	seen := map[Node]struct{}{root: {}}
	var check func(n Node) error
	check = func(n Node) error {
		for _, child := range Children(n) {
			if _, dup := seen[child]; dup {
				return errors.Newf(errors.CodeTraversal, "%s at %s is reachable more than once", child.Type(), child.Range())
			}
			seen[child] = struct{}{}
			if child.Parent() != n {
				return errors.Newf(errors.CodeTraversal, "%s at %s has an inconsistent parent link", child.Type(), child.Range())
			}
			if err := check(child); err != nil {
				return err
			}
		}
		return nil
	}
	return check(root)
}

// IsNil reports whether n is nil or a typed nil node pointer, such as an
// absent *JSXClosingElement.
func IsNil(n Node) bool {
	return n == nil || reflect.ValueOf(n).IsNil()
}

// Root returns the topmost ancestor of n.
func Root(n Node) Node {
	if n == nil {
		return nil
	}
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

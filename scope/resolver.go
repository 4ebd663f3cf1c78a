package scope

import (
	"github.com/input-output-hk/jsxlint/astutil"
	"github.com/input-output-hk/jsxlint/estree"
)

// Resolver answers binding questions about one file's tree using its scope
// table and source text.
type Resolver struct {
	table  *Table
	source *estree.SourceCode
}

// NewResolver returns a resolver over table. A nil table behaves as an empty
// one, a nil source as empty text.
func NewResolver(table *Table, source *estree.SourceCode) *Resolver {
	if table == nil {
		table = NewTable()
	}
	if source == nil {
		source = estree.NewSourceCode("")
	}
	return &Resolver{table: table, source: source}
}

// Table returns the underlying scope table.
func (r *Resolver) Table() *Table {
	return r.table
}

// IsBoundInScope reports whether name is declared in the scope owned by
// owner. Enclosing scopes are not consulted.
func (r *Resolver) IsBoundInScope(owner estree.Node, name string) bool {
	s := r.table.Acquire(owner)
	return s != nil && s.Has(name)
}

// ExternalReference is a read of a name that the subtree does not declare
// itself.
type ExternalReference struct {
	// Node is the full member-access chain around the identifier.
	Node estree.Node
	// Text is Node's source text, the de-duplication key.
	Text      string
	Reference *Reference
}

// ExternalReferences returns the reads made directly in the scope owned by
// root that refer to names declared outside it, de-duplicated by rendered
// text and in reference order.
//
// A read counts as local only when it resolves and its text matches the text
// of the first binding identifier of some variable in root's scope. Matching
// is textual: two different declarations with the same spelling are treated
// as the same.
func (r *Resolver) ExternalReferences(root estree.Node) []ExternalReference {
	s := r.table.Acquire(root)
	if s == nil {
		return nil
	}

	local := make(map[string]struct{}, len(s.Variables))
	for _, v := range s.Variables {
		if len(v.Identifiers) > 0 {
			local[r.source.GetText(v.Identifiers[0])] = struct{}{}
		}
	}

	var out []ExternalReference
	seen := make(map[string]struct{})
	for _, ref := range s.References {
		if !ref.IsRead() || s.Has(identifierName(ref.Identifier)) {
			continue
		}
		n := astutil.WalkUpWhile(ref.Identifier, estree.TypeMemberExpression, estree.TypeIdentifier)
		text := r.source.GetText(n)
		if _, isLocal := local[text]; ref.Resolved != nil && isLocal {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, ExternalReference{Node: n, Text: text, Reference: ref})
	}
	return out
}

// Variable returns the variable id refers to or declares, or nil when id is
// unresolved.
func (r *Resolver) Variable(id estree.Node) *Variable {
	if v := r.table.Binding(id); v != nil {
		return v
	}
	if ref := r.table.Reference(id); ref != nil {
		return ref.Resolved
	}
	return nil
}

// Initializer returns the expression a variable referenced by id was
// initialized with in its first declaration, or nil when the variable is
// unresolved, not declared by a variable declarator, or declared without an
// initializer.
func (r *Resolver) Initializer(id estree.Node) estree.Node {
	v := r.Variable(id)
	if v == nil || len(v.Identifiers) == 0 {
		return nil
	}
	decl, ok := v.Identifiers[0].Parent().(*estree.VariableDeclarator)
	if !ok || decl.ID != v.Identifiers[0] || estree.IsNil(decl.Init) {
		return nil
	}
	return decl.Init
}

package scope

import (
	"github.com/go-json-experiment/json"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
)

// Document is the serialized form of a scope table. Nodes are identified by
// type and source range; upper and resolved scopes by index into Scopes.
type Document struct {
	Scopes []ScopeDoc `json:"scopes"`
}

type ScopeDoc struct {
	Type       Kind           `json:"type"`
	Block      NodeRef        `json:"block"`
	Upper      *int           `json:"upper,omitempty"`
	Variables  []VariableDoc  `json:"variables,omitempty"`
	References []ReferenceDoc `json:"references,omitempty"`
}

// NodeRef names a node by type and range.
type NodeRef struct {
	Type  string       `json:"type"`
	Range estree.Range `json:"range"`
}

type VariableDoc struct {
	Name        string         `json:"name"`
	Identifiers []estree.Range `json:"identifiers,omitempty"`
}

type ReferenceDoc struct {
	Identifier estree.Range `json:"identifier"`
	Read       bool         `json:"read"`
	Write      bool         `json:"write"`
	Resolved   *ResolvedDoc `json:"resolved,omitempty"`
}

type ResolvedDoc struct {
	Scope    int    `json:"scope"`
	Variable string `json:"variable"`
}

// Decode reads a scope table document for the linked tree rooted at prog.
func Decode(data []byte, prog *estree.Program) (*Table, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to decode scope table")
	}
	return doc.Build(prog)
}

// Build resolves the document's node references against prog and returns
// the table.
func (doc *Document) Build(prog *estree.Program) (*Table, error) {
	idx := indexTree(prog)
	t := NewTable()

	scopes := make([]*Scope, len(doc.Scopes))
	for i, sd := range doc.Scopes {
		block := idx.node(sd.Block.Type, sd.Block.Range)
		if block == nil {
			return nil, errors.Newf(errors.CodeInvalidInput, "scope %d: no %s at %s", i, sd.Block.Type, sd.Block.Range)
		}
		var upper *Scope
		if sd.Upper != nil {
			if *sd.Upper < 0 || *sd.Upper >= i {
				return nil, errors.Newf(errors.CodeInvalidInput, "scope %d: upper scope %d must precede it", i, *sd.Upper)
			}
			upper = scopes[*sd.Upper]
		}
		s, err := t.Define(sd.Type, block, upper)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid scope table")
		}
		scopes[i] = s

		for _, vd := range sd.Variables {
			v := s.Declare(vd.Name, nil)
			for _, r := range vd.Identifiers {
				id := idx.identifier(r)
				if id == nil {
					return nil, errors.Newf(errors.CodeInvalidInput, "variable %q: no identifier at %s", vd.Name, r)
				}
				v.Identifiers = append(v.Identifiers, id)
				t.bindings[id] = v
			}
		}
	}

	for i, sd := range doc.Scopes {
		for _, rd := range sd.References {
			id := idx.identifier(rd.Identifier)
			if id == nil {
				return nil, errors.Newf(errors.CodeInvalidInput, "scope %d: no identifier at %s", i, rd.Identifier)
			}
			var flags ReferenceFlag
			if rd.Read {
				flags |= Read
			}
			if rd.Write {
				flags |= Write
			}
			var resolved *Variable
			if rd.Resolved != nil {
				if rd.Resolved.Scope < 0 || rd.Resolved.Scope >= len(scopes) {
					return nil, errors.Newf(errors.CodeInvalidInput, "scope %d: resolved scope %d out of range", i, rd.Resolved.Scope)
				}
				resolved = scopes[rd.Resolved.Scope].Lookup(rd.Resolved.Variable)
				if resolved == nil {
					return nil, errors.Newf(errors.CodeInvalidInput, "scope %d: %q is not declared in scope %d", i, rd.Resolved.Variable, rd.Resolved.Scope)
				}
			}
			scopes[i].AddReference(id, flags, resolved)
		}
	}
	return t, nil
}

// Encode returns the serialized form of t.
func Encode(t *Table) ([]byte, error) {
	index := make(map[*Scope]int, len(t.scopes))
	for i, s := range t.scopes {
		index[s] = i
	}

	doc := Document{Scopes: make([]ScopeDoc, len(t.scopes))}
	for i, s := range t.scopes {
		sd := ScopeDoc{Type: s.Kind, Block: NodeRef{Type: s.Block.Type().String(), Range: s.Block.Range()}}
		if s.Upper != nil {
			up := index[s.Upper]
			sd.Upper = &up
		}
		for _, v := range s.Variables {
			vd := VariableDoc{Name: v.Name}
			for _, id := range v.Identifiers {
				vd.Identifiers = append(vd.Identifiers, id.Range())
			}
			sd.Variables = append(sd.Variables, vd)
		}
		for _, ref := range s.References {
			rd := ReferenceDoc{Identifier: ref.Identifier.Range(), Read: ref.IsRead(), Write: ref.IsWrite()}
			if ref.Resolved != nil {
				rd.Resolved = &ResolvedDoc{Scope: index[ref.Resolved.Scope], Variable: ref.Resolved.Name}
			}
			sd.References = append(sd.References, rd)
		}
		doc.Scopes[i] = sd
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode scope table")
	}
	return data, nil
}

// treeIndex finds nodes by range.
type treeIndex map[estree.Range][]estree.Node

func indexTree(root estree.Node) treeIndex {
	idx := make(treeIndex)
	estree.Inspect(root, func(n estree.Node) bool {
		idx[n.Range()] = append(idx[n.Range()], n)
		return true
	})
	return idx
}

func (idx treeIndex) node(typeName string, r estree.Range) estree.Node {
	for _, n := range idx[r] {
		if n.Type().String() == typeName {
			return n
		}
	}
	return nil
}

// identifier returns the identifier at r. Shorthand properties put key and
// value identifiers on the same range; the value, which comes last in
// document order, is the one analyzers report.
func (idx treeIndex) identifier(r estree.Range) estree.Node {
	var found estree.Node
	for _, n := range idx[r] {
		if n.Type() == estree.TypeIdentifier || n.Type() == estree.TypeJSXIdentifier {
			found = n
		}
	}
	return found
}

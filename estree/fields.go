package estree

import (
	"reflect"
	"sync"
)

type fieldKind uint8

const (
	scalarField fieldKind = iota
	nodeField
	listField
)

// fieldInfo describes one tagged struct field of a node type.
type fieldInfo struct {
	name  string
	index int
	kind  fieldKind
	typ   reflect.Type
}

// layout is the cached field table of a node struct, in declaration order.
type layout struct {
	fields []fieldInfo
	byName map[string]int
}

var (
	layouts  sync.Map // reflect.Type -> *layout
	nodeType = reflect.TypeOf((*Node)(nil)).Elem()
)

// layoutOf returns the field table for the struct type behind n.
func layoutOf(n Node) (*layout, reflect.Value) {
	v := reflect.ValueOf(n).Elem()
	return layoutFor(v.Type()), v
}

func layoutFor(t reflect.Type) *layout {
	if cached, ok := layouts.Load(t); ok {
		return cached.(*layout)
	}

	l := &layout{byName: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, ok := sf.Tag.Lookup("estree")
		if !ok || sf.Anonymous {
			continue
		}
		info := fieldInfo{name: name, index: i, typ: sf.Type}
		switch {
		case sf.Type.Implements(nodeType):
			info.kind = nodeField
		case sf.Type.Kind() == reflect.Slice && sf.Type.Elem().Implements(nodeType):
			info.kind = listField
		}
		l.byName[name] = len(l.fields)
		l.fields = append(l.fields, info)
	}

	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*layout)
}

// nodeAt converts a node-typed field value to a Node, mapping typed nil
// pointers to a nil interface.
func nodeAt(v reflect.Value) Node {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(Node)
}

// Children returns the direct children of n in document order. Nil optional
// children and list holes are skipped.
func Children(n Node) []Node {
	if IsNil(n) {
		return nil
	}
	l, v := layoutOf(n)
	var out []Node
	for _, f := range l.fields {
		switch f.kind {
		case nodeField:
			if child := nodeAt(v.Field(f.index)); child != nil {
				out = append(out, child)
			}
		case listField:
			list := v.Field(f.index)
			for i := 0; i < list.Len(); i++ {
				if child := nodeAt(list.Index(i)); child != nil {
					out = append(out, child)
				}
			}
		}
	}
	return out
}

// Field returns the value of n's ESTree property name. Node-valued properties
// come back as Node (nil when absent), list properties as []Node (holes kept
// as nil entries) and scalars as their Go value. The pseudo-property "type"
// yields the node's type name. The boolean is false when n has no such
// property.
func Field(n Node, name string) (interface{}, bool) {
	if IsNil(n) {
		return nil, false
	}
	if name == "type" {
		if u, ok := n.(*Unknown); ok {
			return u.Kind, true
		}
		return n.Type().String(), true
	}
	l, v := layoutOf(n)
	idx, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	f := l.fields[idx]
	fv := v.Field(f.index)
	switch f.kind {
	case nodeField:
		if child := nodeAt(fv); child != nil {
			return child, true
		}
		return nil, true
	case listField:
		out := make([]Node, fv.Len())
		for i := range out {
			out[i] = nodeAt(fv.Index(i))
		}
		return out, true
	default:
		return fv.Interface(), true
	}
}

// FieldNames returns the ESTree property names of node type t in declaration
// order.
func FieldNames(t Type) []string {
	l, _ := layoutOf(New(t))
	names := make([]string, len(l.fields))
	for i, f := range l.fields {
		names[i] = f.name
	}
	return names
}

// Inspect traverses the tree rooted at root in depth-first pre-order, calling
// fn for each node. Children of a node are skipped when fn returns false.
func Inspect(root Node, fn func(Node) bool) {
	if IsNil(root) || !fn(root) {
		return
	}
	for _, child := range Children(root) {
		Inspect(child, fn)
	}
}

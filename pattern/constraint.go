package pattern

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/input-output-hk/jsxlint/estree"
)

// Constraint restricts the value of one node field.
type Constraint interface {
	fmt.Stringer
	match(v interface{}) bool
}

func constraintOf(v interface{}) Constraint {
	switch v := v.(type) {
	case Constraint:
		return v
	case *Pattern:
		return nodeConstraint{v}
	default:
		return Eq(v)
	}
}

type nodeConstraint struct{ p *Pattern }

func (c nodeConstraint) match(v interface{}) bool {
	if c.p == nil {
		return v == nil
	}
	n, ok := v.(estree.Node)
	return ok && c.p.Match(n)
}

func (c nodeConstraint) String() string {
	if c.p == nil {
		return "nil"
	}
	return c.p.String()
}

type eq struct{ want interface{} }

// Eq requires the field to equal v. Numbers compare by value whatever their
// Go type; nodes compare by identity; nil matches absent children and null
// literal values.
func Eq(v interface{}) Constraint {
	return eq{v}
}

func (c eq) match(v interface{}) bool { return Equal(c.want, v) }
func (c eq) String() string          { return fmt.Sprintf("%#v", c.want) }

// Equal reports whether two field values are equal under Eq's rules.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if na, ok := a.(estree.Node); ok {
		nb, ok := b.(estree.Node)
		return ok && na == nb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

type oneOf []interface{}

// OneOf requires the field to equal one of vs.
func OneOf(vs ...interface{}) Constraint {
	return oneOf(vs)
}

func (c oneOf) match(v interface{}) bool {
	for _, want := range c {
		if Equal(want, v) {
			return true
		}
	}
	return false
}

func (c oneOf) String() string { return fmt.Sprintf("oneOf%v", []interface{}(c)) }

type anyOf []Constraint

// AnyOf requires the field to satisfy at least one of cs, each of which may
// be a Constraint, a *Pattern or a plain value.
func AnyOf(cs ...interface{}) Constraint {
	out := make(anyOf, len(cs))
	for i, c := range cs {
		out[i] = constraintOf(c)
	}
	return out
}

func (c anyOf) match(v interface{}) bool {
	for _, alt := range c {
		if alt.match(v) {
			return true
		}
	}
	return false
}

func (c anyOf) String() string { return "anyOf(" + joinConstraints(c) + ")" }

type not struct{ c Constraint }

// Not inverts c.
func Not(c interface{}) Constraint {
	return not{constraintOf(c)}
}

func (c not) match(v interface{}) bool { return !c.c.match(v) }
func (c not) String() string          { return "not(" + c.c.String() + ")" }

type kindConstraint struct {
	name string
	test func(interface{}) bool
}

func (c kindConstraint) match(v interface{}) bool { return c.test(v) }
func (c kindConstraint) String() string          { return c.name }

// String requires the field to hold a string.
func String() Constraint {
	return kindConstraint{"string", func(v interface{}) bool {
		_, ok := v.(string)
		return ok
	}}
}

// Present requires the field to hold a non-nil value.
func Present() Constraint {
	return kindConstraint{"present", func(v interface{}) bool { return v != nil }}
}

// Absent requires the field to be nil: an absent child or a null value.
func Absent() Constraint {
	return kindConstraint{"absent", func(v interface{}) bool { return v == nil }}
}

// Where requires fn to accept the field value.
func Where(name string, fn func(v interface{}) bool) Constraint {
	return kindConstraint{name, fn}
}

type elements []Constraint

// Elements requires a list field with exactly len(cs) entries, the i-th
// satisfying cs[i].
func Elements(cs ...interface{}) Constraint {
	out := make(elements, len(cs))
	for i, c := range cs {
		out[i] = constraintOf(c)
	}
	return out
}

func (c elements) match(v interface{}) bool {
	list, ok := v.([]estree.Node)
	if !ok || len(list) != len(c) {
		return false
	}
	for i, item := range list {
		var val interface{}
		if item != nil {
			val = item
		}
		if !c[i].match(val) {
			return false
		}
	}
	return true
}

func (c elements) String() string { return "[" + joinConstraints(c) + "]" }

type some struct{ c Constraint }

// Some requires a list field with at least one entry satisfying c.
func Some(c interface{}) Constraint {
	return some{constraintOf(c)}
}

func (c some) match(v interface{}) bool {
	list, ok := v.([]estree.Node)
	if !ok {
		return false
	}
	for _, item := range list {
		if item != nil && c.c.match(item) {
			return true
		}
	}
	return false
}

func (c some) String() string { return "some(" + c.c.String() + ")" }

func joinConstraints(cs []Constraint) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

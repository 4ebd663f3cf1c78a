package estree

import (
	"reflect"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/input-output-hk/jsxlint/errors"
)

// DecodeOption configures Decode.
type DecodeOption func(*decoder)

// WithSource supplies the source text the tree was parsed from. Node
// locations missing from the input are computed from it.
func WithSource(text string) DecodeOption {
	return func(d *decoder) {
		d.source = NewSourceCode(text)
	}
}

// WithUTF16Offsets declares that input ranges count UTF-16 code units, as
// JavaScript parsers do. Ranges are converted to byte offsets into text and
// locations are recomputed from the converted ranges.
func WithUTF16Offsets(text string) DecodeOption {
	return func(d *decoder) {
		d.source = NewSourceCode(text)
		d.utf16 = utf16Table(text)
	}
}

type decoder struct {
	source *SourceCode
	utf16  []int
}

// rawPosition is the position data a parser attaches to every node.
type rawPosition struct {
	Range *[2]int         `json:"range"`
	Start *int            `json:"start"`
	End   *int            `json:"end"`
	Loc   *SourceLocation `json:"loc"`
}

// Decode reads an ESTree JSON document whose root is a Program and returns
// the linked tree. Node kinds outside the Type enumeration decode to *Unknown
// leaves.
func Decode(data []byte, opts ...DecodeOption) (*Program, error) {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}

	root, err := d.node(jsontext.Value(data))
	if err != nil {
		return nil, err
	}
	prog, ok := root.(*Program)
	if !ok {
		got := "null"
		if root != nil {
			got = root.Type().String()
		}
		return nil, errors.Newf(errors.CodeInvalidInput, "root node must be a Program, got %s", got)
	}
	if err := Link(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

func (d *decoder) node(raw jsontext.Value) (Node, error) {
	if len(raw) == 0 || raw.Kind() == 'n' {
		return nil, nil
	}

	var obj map[string]jsontext.Value
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to decode node")
	}

	var typeName string
	if err := json.Unmarshal(obj["type"], &typeName); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "node has no type")
	}

	var n Node
	if t, ok := ParseType(typeName); ok {
		n = New(t)
		if err := d.fields(n, obj); err != nil {
			return nil, err
		}
	} else {
		n = &Unknown{Kind: typeName}
	}

	if err := d.position(n, obj); err != nil {
		return nil, err
	}
	return n, nil
}

func (d *decoder) fields(n Node, obj map[string]jsontext.Value) error {
	l, v := layoutOf(n)
	for _, f := range l.fields {
		raw, ok := obj[f.name]
		if !ok {
			continue
		}
		dst := v.Field(f.index)

		switch f.kind {
		case nodeField:
			child, err := d.node(raw)
			if err != nil {
				return err
			}
			if err := assignNode(dst, child, n, f.name); err != nil {
				return err
			}

		case listField:
			if raw.Kind() == 'n' {
				continue
			}
			var items []jsontext.Value
			if err := json.Unmarshal(raw, &items); err != nil {
				return errors.Wrap(err, errors.CodeInvalidInput, "failed to decode "+n.Type().String()+"."+f.name)
			}
			list := reflect.MakeSlice(f.typ, len(items), len(items))
			for i, item := range items {
				child, err := d.node(item)
				if err != nil {
					return err
				}
				if err := assignNode(list.Index(i), child, n, f.name); err != nil {
					return err
				}
			}
			dst.Set(list)

		default:
			if raw.Kind() == 'n' && dst.Kind() != reflect.Interface {
				continue
			}
			if err := json.Unmarshal(raw, dst.Addr().Interface()); err != nil {
				return errors.Wrap(err, errors.CodeInvalidInput, "failed to decode "+n.Type().String()+"."+f.name)
			}
		}
	}
	return nil
}

// assignNode stores child in dst. Unknown children that do not fit a typed
// slot are dropped; any other mismatch is an input error.
func assignNode(dst reflect.Value, child, parent Node, field string) error {
	if child == nil {
		return nil
	}
	cv := reflect.ValueOf(child)
	if !cv.Type().AssignableTo(dst.Type()) {
		if child.Type() == TypeUnknown {
			return nil
		}
		return errors.Newf(errors.CodeInvalidInput, "%s.%s cannot hold %s", parent.Type(), field, child.Type())
	}
	dst.Set(cv)
	return nil
}

func (d *decoder) position(n Node, obj map[string]jsontext.Value) error {
	var pos rawPosition
	for _, key := range []string{"range", "start", "end", "loc"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var err error
		switch key {
		case "range":
			err = json.Unmarshal(raw, &pos.Range)
		case "start":
			err = json.Unmarshal(raw, &pos.Start)
		case "end":
			err = json.Unmarshal(raw, &pos.End)
		case "loc":
			err = json.Unmarshal(raw, &pos.Loc)
		}
		if err != nil {
			return errors.Wrap(err, errors.CodeInvalidInput, "failed to decode position of "+n.Type().String())
		}
	}

	var r Range
	switch {
	case pos.Range != nil:
		r = Range(*pos.Range)
	case pos.Start != nil && pos.End != nil:
		r = Range{*pos.Start, *pos.End}
	}
	if d.utf16 != nil {
		r = Range{d.byteOffset(r[0]), d.byteOffset(r[1])}
	}

	var loc SourceLocation
	switch {
	case d.utf16 == nil && pos.Loc != nil:
		loc = *pos.Loc
	case d.source != nil:
		loc = d.source.Location(r)
	}
	SetPosition(n, r, loc)
	return nil
}

func (d *decoder) byteOffset(unit int) int {
	switch {
	case unit < 0:
		return 0
	case unit >= len(d.utf16):
		return d.utf16[len(d.utf16)-1]
	default:
		return d.utf16[unit]
	}
}

// utf16Table maps each UTF-16 code unit index of text to its byte offset.
// The final entry is len(text).
func utf16Table(text string) []int {
	table := make([]int, 0, len(text)+1)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		units := utf16.RuneLen(r)
		if units < 1 {
			units = 1
		}
		for u := 0; u < units; u++ {
			table = append(table, i)
		}
		i += size
	}
	return append(table, len(text))
}

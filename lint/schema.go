package lint

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/input-output-hk/jsxlint/errors"
)

// Schema validates and normalizes a rule's options.
//
// CUE is a CUE expression the raw options must unify with. Defaults marked
// with * fill in absent options, so
//
//	*"always" | "as-needed" | close({allow: *"always" | "as-needed"})
//
// accepts a bare string or an object and resolves to "always" when no options
// are given. Normalize then turns the validated value into one canonical Go
// value, which rules read back with OptionsAs.
type Schema struct {
	CUE string
	// Normalize converts the validated value. When nil the value is decoded
	// into a generic Go value.
	Normalize func(v cue.Value) (interface{}, error)
}

// Resolve validates raw options against the schema and returns the
// normalized options. A nil schema accepts only absent options.
func (s *Schema) Resolve(options interface{}) (interface{}, error) {
	if s == nil {
		if options != nil {
			return nil, errors.New(errors.CodeInvalidConfig, "rule does not accept options")
		}
		return nil, nil
	}

	cctx := cuecontext.New()
	schema := cctx.CompileString(s.CUE)
	if err := schema.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid option schema",
			map[string]interface{}{"details": cueerrors.Details(err, nil)})
	}

	v := schema
	if options != nil {
		encoded := cctx.Encode(options)
		if err := encoded.Err(); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to encode options")
		}
		v = schema.Unify(encoded)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, errors.WrapWithContext(errors.Wrap(err, errors.CodeSchemaFailed, "schema validation failed"),
			errors.CodeInvalidConfig, "invalid rule options",
			map[string]interface{}{"details": cueerrors.Details(err, nil)})
	}
	if d, ok := v.Default(); ok {
		v = d
	}

	if s.Normalize == nil {
		var out interface{}
		if err := v.Decode(&out); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode options")
		}
		return out, nil
	}
	out, err := s.Normalize(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to normalize options")
	}
	return out, nil
}

// DecodeInto returns a Normalize function that decodes the options into a T.
func DecodeInto[T any]() func(v cue.Value) (interface{}, error) {
	return func(v cue.Value) (interface{}, error) {
		var out T
		if err := v.Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// StringOr normalizes options given either as a bare string or as an object.
// A string is handed to fromString; an object is decoded into a T and handed
// to fromObject.
func StringOr[T any](fromString func(string) T, fromObject func(T) T) func(v cue.Value) (interface{}, error) {
	return func(v cue.Value) (interface{}, error) {
		if v.Kind() == cue.StringKind {
			s, err := v.String()
			if err != nil {
				return nil, err
			}
			return fromString(s), nil
		}
		var obj T
		if err := v.Decode(&obj); err != nil {
			return nil, err
		}
		return fromObject(obj), nil
	}
}

// OptionsAs returns the run's normalized options as a T, or T's zero value
// when they have another type.
func OptionsAs[T any](c *Context) T {
	v, _ := c.Options().(T)
	return v
}

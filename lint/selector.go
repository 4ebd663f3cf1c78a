package lint

import (
	"strconv"
	"strings"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/pattern"
)

// Selector is a compiled visitor key.
type Selector struct {
	raw string
	// parts[len-1] is the subject; earlier parts constrain its ancestors.
	parts []compound
	// combinators[i] joins parts[i] and parts[i+1].
	combinators []combinator
	exit        bool
}

type combinator int

const (
	descendant combinator = iota
	child
)

type compound struct {
	any   bool
	typ   estree.Type
	attrs []attribute
}

type attrOp int

const (
	opPresent attrOp = iota
	opEqual
	opNotEqual
)

type attribute struct {
	path  []string
	op    attrOp
	value interface{}
}

// ParseSelectors parses a visitor key, which may list several selectors
// separated by commas.
func ParseSelectors(key string) ([]*Selector, error) {
	var out []*Selector
	for _, raw := range splitTopLevel(key, ',') {
		s, err := ParseSelector(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ParseSelector parses a single selector.
func ParseSelector(raw string) (*Selector, error) {
	p := &selectorParser{src: strings.TrimSpace(raw)}
	s, err := p.parse()
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid selector",
			map[string]interface{}{"selector": raw})
	}
	s.raw = strings.TrimSpace(raw)
	return s, nil
}

// String returns the selector's source text.
func (s *Selector) String() string { return s.raw }

// Exit reports whether the selector fires after the node's subtree.
func (s *Selector) Exit() bool { return s.exit }

// Subject returns the node type the selector fires on, or false for "*".
func (s *Selector) Subject() (estree.Type, bool) {
	last := s.parts[len(s.parts)-1]
	return last.typ, !last.any
}

// Specificity orders selectors firing on the same node: attribute filters
// weigh more than type names.
func (s *Selector) Specificity() int {
	attrs, types := 0, 0
	for _, c := range s.parts {
		attrs += len(c.attrs)
		if !c.any {
			types++
		}
	}
	return attrs<<16 | types
}

// Match reports whether n is selected.
func (s *Selector) Match(n estree.Node) bool {
	return s.matchAt(len(s.parts)-1, n)
}

func (s *Selector) matchAt(i int, n estree.Node) bool {
	if estree.IsNil(n) || !s.parts[i].match(n) {
		return false
	}
	if i == 0 {
		return true
	}
	if s.combinators[i-1] == child {
		return s.matchAt(i-1, n.Parent())
	}
	for a := n.Parent(); a != nil; a = a.Parent() {
		if s.matchAt(i-1, a) {
			return true
		}
	}
	return false
}

func (c compound) match(n estree.Node) bool {
	if !c.any && n.Type() != c.typ {
		return false
	}
	for _, a := range c.attrs {
		if !a.match(n) {
			return false
		}
	}
	return true
}

func (a attribute) match(n estree.Node) bool {
	var cur interface{} = n
	for _, name := range a.path {
		node, ok := cur.(estree.Node)
		if !ok || estree.IsNil(node) {
			return a.op == opNotEqual
		}
		v, ok := estree.Field(node, name)
		if !ok {
			return a.op == opNotEqual
		}
		cur = v
	}
	switch a.op {
	case opEqual:
		return pattern.Equal(a.value, cur)
	case opNotEqual:
		return !pattern.Equal(a.value, cur)
	default:
		if node, ok := cur.(estree.Node); ok {
			return !estree.IsNil(node)
		}
		return cur != nil
	}
}

type selectorParser struct {
	src string
	pos int
}

func (p *selectorParser) parse() (*Selector, error) {
	if p.src == "" {
		return nil, errors.New(errors.CodeInvalidConfig, "empty selector")
	}
	s := &Selector{}
	if strings.HasSuffix(p.src, ":exit") {
		s.exit = true
		p.src = strings.TrimSpace(strings.TrimSuffix(p.src, ":exit"))
	}

	for {
		c, err := p.compound()
		if err != nil {
			return nil, err
		}
		s.parts = append(s.parts, c)

		ws := p.skipSpace()
		if p.eof() {
			return s, nil
		}
		if p.peek() == '>' {
			p.pos++
			p.skipSpace()
			s.combinators = append(s.combinators, child)
			continue
		}
		if !ws {
			return nil, errors.Newf(errors.CodeInvalidConfig, "unexpected %q at offset %d", p.peek(), p.pos)
		}
		s.combinators = append(s.combinators, descendant)
	}
}

func (p *selectorParser) compound() (compound, error) {
	var c compound
	switch {
	case p.eof():
		return c, errors.New(errors.CodeInvalidConfig, "selector ends after a combinator")
	case p.peek() == '*':
		p.pos++
		c.any = true
	case isIdentStart(p.peek()):
		name := p.ident()
		t, ok := estree.ParseType(name)
		if !ok {
			return c, errors.Newf(errors.CodeInvalidConfig, "unknown node type %q", name)
		}
		c.typ = t
	case p.peek() == '[':
		c.any = true
	default:
		return c, errors.Newf(errors.CodeInvalidConfig, "unexpected %q at offset %d", p.peek(), p.pos)
	}

	for !p.eof() && p.peek() == '[' {
		a, err := p.attribute()
		if err != nil {
			return c, err
		}
		c.attrs = append(c.attrs, a)
	}
	return c, nil
}

func (p *selectorParser) attribute() (attribute, error) {
	var a attribute
	p.pos++ // [
	p.skipSpace()
	for {
		if p.eof() || !isIdentStart(p.peek()) {
			return a, errors.Newf(errors.CodeInvalidConfig, "expected attribute name at offset %d", p.pos)
		}
		a.path = append(a.path, p.ident())
		if p.eof() || p.peek() != '.' {
			break
		}
		p.pos++
	}
	p.skipSpace()

	switch {
	case strings.HasPrefix(p.src[p.pos:], "!="):
		a.op = opNotEqual
		p.pos += 2
	case strings.HasPrefix(p.src[p.pos:], "="):
		a.op = opEqual
		p.pos++
	}
	if a.op != opPresent {
		p.skipSpace()
		v, err := p.value()
		if err != nil {
			return a, err
		}
		a.value = v
		p.skipSpace()
	}

	if p.eof() || p.peek() != ']' {
		return a, errors.Newf(errors.CodeInvalidConfig, "unterminated attribute at offset %d", p.pos)
	}
	p.pos++
	return a, nil
}

func (p *selectorParser) value() (interface{}, error) {
	if p.eof() {
		return nil, errors.New(errors.CodeInvalidConfig, "missing attribute value")
	}
	if q := p.peek(); q == '"' || q == '\'' {
		end := strings.IndexByte(p.src[p.pos+1:], q)
		if end < 0 {
			return nil, errors.Newf(errors.CodeInvalidConfig, "unterminated string at offset %d", p.pos)
		}
		s := p.src[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return s, nil
	}

	start := p.pos
	for !p.eof() && p.peek() != ']' && !isSpace(p.peek()) {
		p.pos++
	}
	word := p.src[start:p.pos]
	switch word {
	case "":
		return nil, errors.New(errors.CodeInvalidConfig, "missing attribute value")
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}
	if f, err := strconv.ParseFloat(word, 64); err == nil {
		return f, nil
	}
	return word, nil
}

func (p *selectorParser) ident() string {
	start := p.pos
	for !p.eof() && isIdentPart(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *selectorParser) skipSpace() bool {
	start := p.pos
	for !p.eof() && isSpace(p.peek()) {
		p.pos++
	}
	return p.pos > start
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

func (p *selectorParser) eof() bool  { return p.pos >= len(p.src) }
func (p *selectorParser) peek() byte { return p.src[p.pos] }

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// splitTopLevel splits s on sep outside brackets and quotes.
func splitTopLevel(s string, sep byte) []string {
	var (
		out   []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == sep && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

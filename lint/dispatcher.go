package lint

import (
	"context"
	"runtime/debug"
	"sort"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
)

// RunRule runs one rule over one file and returns its diagnostics in
// traversal order.
//
// The run validates the options against the rule's schema, checks the
// rule's React version constraint (an unmet constraint skips the rule
// without error), creates the visitors and walks the tree once, firing enter
// callbacks before a node's children and ":exit" callbacks after them.
// Several selectors matching the same node fire in ascending specificity,
// then key order.
//
// Failures are returned as *RuleError. Diagnostics reported before a failure
// are returned with it.
func RunRule(ctx context.Context, rule Rule, file *File, options interface{}, opts ...RunOption) (diags []Diagnostic, err error) {
	o := defaultRunOptions()
	applyRunOptions(o, opts)

	if rule == nil {
		return nil, errors.New(errors.CodeInvalidConfig, "rule must not be nil")
	}
	name := rule.Name()
	fail := func(err error) error {
		re := &RuleError{Rule: name, Err: err}
		if file != nil {
			re.File = file.Name
		}
		return re
	}

	var c *Context
	defer func() {
		if r := recover(); r != nil {
			if c != nil {
				diags = c.sink.Diagnostics()
				c.release()
			}
			err = fail(errors.Newf(errors.CodeInternal, "rule panicked: %v", r).
				WithContext("stack", string(debug.Stack())))
			if o.logger != nil {
				o.logger.ErrorContext(ctx, "rule panicked", "rule", name, "panic", r)
			}
		}
	}()

	if err := file.check(); err != nil {
		return nil, fail(err)
	}
	ok, err := o.settings.Satisfies(rule.Meta().Requires)
	if err != nil {
		return nil, fail(err)
	}
	if !ok {
		if o.logger != nil {
			o.logger.DebugContext(ctx, "skipping rule",
				"rule", name,
				"requires", rule.Meta().Requires,
				"reactVersion", o.settings.ReactVersion)
		}
		return nil, nil
	}

	options, err = rule.Schema().Resolve(options)
	if err != nil {
		return nil, fail(err)
	}
	table, err := file.scopes()
	if err != nil {
		return nil, fail(err)
	}

	c = newContext(rule, file, table, options, o)
	visitors := rule.Create(c)
	if c.err != nil {
		return nil, fail(c.err)
	}
	d, err := compile(visitors)
	if err != nil {
		return nil, fail(err)
	}

	if o.logger != nil {
		o.logger.DebugContext(ctx, "running rule", "rule", name, "file", file.Name, "selectors", d.size)
	}
	c.phase = PhaseTraversing
	err = d.walk(ctx, c, file.Program)
	c.phase = PhaseDone
	c.release()

	diags = c.sink.Diagnostics()
	if err != nil {
		return diags, fail(err)
	}
	return diags, nil
}

func (c *Context) release() {
	c.phase = PhaseDone
	c.current = nil
	c.cache = nil
	c.collector = nil
}

type listener struct {
	sel  *Selector
	key  string
	fn   Visitor
	spec int
}

// dispatcher routes nodes to the listeners whose subject type matches.
type dispatcher struct {
	byType map[listenerKey][]*listener
	any    [2][]*listener
	merged map[listenerKey][]*listener
	size   int
}

type listenerKey struct {
	typ  estree.Type
	exit bool
}

func compile(visitors Visitors) (*dispatcher, error) {
	keys := make([]string, 0, len(visitors))
	for key, fn := range visitors {
		if fn != nil {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	d := &dispatcher{
		byType: make(map[listenerKey][]*listener),
		merged: make(map[listenerKey][]*listener),
	}
	for _, key := range keys {
		sels, err := ParseSelectors(key)
		if err != nil {
			return nil, err
		}
		for _, sel := range sels {
			l := &listener{sel: sel, key: key, fn: visitors[key], spec: sel.Specificity()}
			if t, ok := sel.Subject(); ok {
				k := listenerKey{typ: t, exit: sel.Exit()}
				d.byType[k] = append(d.byType[k], l)
			} else {
				i := 0
				if sel.Exit() {
					i = 1
				}
				d.any[i] = append(d.any[i], l)
			}
			d.size++
		}
	}
	return d, nil
}

// listeners returns the listeners for nodes of type t, ordered by
// specificity then key.
func (d *dispatcher) listeners(t estree.Type, exit bool) []*listener {
	k := listenerKey{typ: t, exit: exit}
	if ls, ok := d.merged[k]; ok {
		return ls
	}
	i := 0
	if exit {
		i = 1
	}
	ls := make([]*listener, 0, len(d.byType[k])+len(d.any[i]))
	ls = append(ls, d.byType[k]...)
	ls = append(ls, d.any[i]...)
	sort.SliceStable(ls, func(a, b int) bool {
		if ls[a].spec != ls[b].spec {
			return ls[a].spec < ls[b].spec
		}
		return ls[a].key < ls[b].key
	})
	d.merged[k] = ls
	return ls
}

func (d *dispatcher) walk(ctx context.Context, c *Context, n estree.Node) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.CodeCanceled, "rule run canceled")
	}
	if err := d.fire(c, n, false); err != nil {
		return err
	}
	for _, child := range estree.Children(n) {
		if err := d.walk(ctx, c, child); err != nil {
			return err
		}
	}
	return d.fire(c, n, true)
}

func (d *dispatcher) fire(c *Context, n estree.Node, exit bool) error {
	for _, l := range d.listeners(n.Type(), exit) {
		if !l.sel.Match(n) {
			continue
		}
		c.current = n
		l.fn(n)
		c.current = nil
		if c.err != nil {
			return c.err
		}
	}
	return nil
}

package lint

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
	et "github.com/input-output-hk/jsxlint/estree/estreetest"
)

func newTestFile(t *testing.T, name string, prog *estree.Program) *File {
	t.Helper()
	printed := et.Print(prog)
	file, err := NewFile(name, printed.Program, printed.Source.Text(), nil)
	require.NoError(t, err)
	return file
}

var testMeta = Meta{
	Description: "test rule",
	Kind:        KindProblem,
	Messages: map[string]string{
		"FOUND": "found {{name}}",
		"PLAIN": "plain",
	},
}

// logRule records the callbacks it receives.
func logRule(log *[]string, visitors func(c *Context, log *[]string) Visitors) Rule {
	return Define("test/log", testMeta, nil, func(c *Context) Visitors {
		return visitors(c, log)
	})
}

func identName(n estree.Node) string {
	if id, ok := n.(*estree.Identifier); ok {
		return id.Name
	}
	return n.Type().String()
}

func TestRunRuleEmptyDiagnostics(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program(et.ExprStmt(et.Call(et.Ident("f"), et.Num(1)))))
	called := false
	rule := Define("test/cond", testMeta, nil, func(c *Context) Visitors {
		return Visitors{
			"ConditionalExpression": func(n estree.Node) {
				called = true
				c.Report(Descriptor{MessageID: "PLAIN", Node: n})
			},
		}
	})

	diags, err := RunRule(context.Background(), rule, file, nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.False(t, called)

	empty := newTestFile(t, "empty.jsx", et.Program())
	diags, err = RunRule(context.Background(), rule, empty, nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestRunRuleReports(t *testing.T) {
	x := et.Ident("x")
	file := newTestFile(t, "a.jsx", et.Program(et.ExprStmt(et.Call(et.Ident("f"), x))))
	rule := Define("test/ident", testMeta, nil, func(c *Context) Visitors {
		return Visitors{
			"Identifier": func(n estree.Node) {
				c.Report(Descriptor{
					MessageID: "FOUND",
					Node:      n,
					Data:      map[string]interface{}{"name": identName(n)},
					Fix:       &Fix{Range: n.Range(), Text: "y"},
				})
			},
		}
	})

	diags, err := RunRule(context.Background(), rule, file, nil, WithSeverity(SeverityWarning))
	require.NoError(t, err)
	require.Len(t, diags, 2)

	d := diags[1]
	assert.Equal(t, "test/ident", d.Rule)
	assert.Equal(t, "FOUND", d.MessageID)
	assert.Equal(t, "found x", d.Message)
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Equal(t, "a.jsx", d.File)
	assert.Same(t, x, d.Node)
	assert.Equal(t, x.Range(), d.Range)
	assert.Equal(t, x.Loc(), d.Location)
	assert.Equal(t, "x", d.Context["name"])
	require.NotNil(t, d.Fix)
	assert.Equal(t, "f(y);\n", d.Fix.Apply(file.Source.Text()))
	assert.Equal(t, "found f", diags[0].Message)
}

func TestRunRuleUnknownMessageID(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program(et.ExprStmt(et.Ident("a")), et.ExprStmt(et.Ident("b"))))
	bad := Define("test/bad", testMeta, nil, func(c *Context) Visitors {
		return Visitors{
			"Identifier": func(n estree.Node) {
				if identName(n) == "b" {
					c.Report(Descriptor{MessageID: "MISSING", Node: n})
					return
				}
				c.Report(Descriptor{MessageID: "PLAIN", Node: n})
			},
		}
	})
	good := Define("test/good", testMeta, nil, func(c *Context) Visitors {
		return Visitors{"Identifier": func(n estree.Node) { c.Report(Descriptor{MessageID: "PLAIN", Node: n}) }}
	})

	diags, err := RunRule(context.Background(), bad, file, nil)
	require.Error(t, err)
	assert.True(t, IsRuleError(err))
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	require.Len(t, diags, 1, "only the report before the failure survives")
	assert.Equal(t, "PLAIN", diags[0].MessageID)

	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "test/bad", re.Rule)
	assert.Equal(t, "a.jsx", re.File)

	diags, err = RunRule(context.Background(), good, file, nil)
	require.NoError(t, err)
	assert.Len(t, diags, 2)
}

func TestRunRuleReportOutsideTraversal(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program())
	rule := Define("test/early", testMeta, nil, func(c *Context) Visitors {
		c.Report(Descriptor{MessageID: "PLAIN", Node: c.Program()})
		return nil
	})
	_, err := RunRule(context.Background(), rule, file, nil)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestRunRuleCallbackOrder(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program(et.ExprStmt(et.Call(et.Ident("f"), et.Ident("x")))))
	var log []string
	rule := logRule(&log, func(_ *Context, log *[]string) Visitors {
		add := func(prefix string) Visitor {
			return func(n estree.Node) { *log = append(*log, prefix+identName(n)) }
		}
		return Visitors{
			"*":                           add("any:"),
			"Identifier":                  add("ident:"),
			`Identifier[name="x"]`:        add("named:"),
			"CallExpression > Identifier": add("child:"),
			"CallExpression:exit":         add("exit:"),
			"Program:exit":                add("exit:"),
		}
	})

	_, err := RunRule(context.Background(), rule, file, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"any:Program",
		"any:ExpressionStatement",
		"any:CallExpression",
		"any:f", "ident:f", "child:f",
		"any:x", "ident:x", "child:x", "named:x",
		"exit:CallExpression",
		"exit:Program",
	}, log)
}

func TestRunRuleCombinators(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program(
		et.ExprStmt(et.Call(et.Ident("f"), et.Ident("x"))),
		et.ExprStmt(et.Ident("y")),
	))
	var log []string
	rule := logRule(&log, func(_ *Context, log *[]string) Visitors {
		return Visitors{
			"Program Identifier, ExpressionStatement > Identifier": func(n estree.Node) {
				*log = append(*log, identName(n))
			},
		}
	})

	_, err := RunRule(context.Background(), rule, file, nil)
	require.NoError(t, err)
	// y matches both selectors of the key.
	assert.Equal(t, []string{"f", "x", "y", "y"}, log)
}

func TestRunRuleInvalidSelector(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program())
	for _, key := range []string{"Nope", "Identifier[", "Identifier >", "", "Identifier:enter"} {
		t.Run(key, func(t *testing.T) {
			rule := Define("test/selector", testMeta, nil, func(c *Context) Visitors {
				return Visitors{key: func(estree.Node) {}}
			})
			_, err := RunRule(context.Background(), rule, file, nil)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

type modeOptions struct {
	Mode string `json:"mode"`
}

var modeSchema = &Schema{
	CUE: `*"loose" | "strict" | close({mode: "loose" | "strict"})`,
	Normalize: StringOr(
		func(s string) modeOptions { return modeOptions{Mode: s} },
		func(o modeOptions) modeOptions { return o },
	),
}

func TestRunRuleOptions(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program())
	var got modeOptions
	rule := Define("test/options", testMeta, modeSchema, func(c *Context) Visitors {
		got = OptionsAs[modeOptions](c)
		return nil
	})

	tests := []struct {
		name    string
		options interface{}
		want    string
		wantErr bool
	}{
		{name: "default", options: nil, want: "loose"},
		{name: "string", options: "strict", want: "strict"},
		{name: "object", options: map[string]interface{}{"mode": "strict"}, want: "strict"},
		{name: "bad string", options: "sloppy", wantErr: true},
		{name: "unknown field", options: map[string]interface{}{"mode": "strict", "extra": true}, wantErr: true},
		{name: "wrong type", options: 3.0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = modeOptions{}
			_, err := RunRule(context.Background(), rule, file, tt.options)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
				assert.True(t, errors.HasCode(err, errors.CodeSchemaFailed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Mode)
		})
	}

	noOptions := Define("test/none", testMeta, nil, func(*Context) Visitors { return nil })
	_, err := RunRule(context.Background(), noOptions, file, "anything")
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestRunRuleVersionGate(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program())
	meta := testMeta
	meta.Requires = ">=16.2.0"
	created := false
	rule := Define("test/gated", meta, nil, func(*Context) Visitors {
		created = true
		return nil
	})

	diags, err := RunRule(context.Background(), rule, file, nil, WithSettings(Settings{ReactVersion: "16.0.0"}))
	require.NoError(t, err)
	assert.Nil(t, diags)
	assert.False(t, created)

	_, err = RunRule(context.Background(), rule, file, nil, WithSettings(Settings{ReactVersion: "18.2.0"}))
	require.NoError(t, err)
	assert.True(t, created)

	_, err = RunRule(context.Background(), rule, file, nil, WithSettings(Settings{ReactVersion: "latest"}))
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestRunRuleRecoversPanics(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program(et.ExprStmt(et.Ident("a")), et.ExprStmt(et.Ident("b"))))
	rule := Define("test/panic", testMeta, nil, func(c *Context) Visitors {
		return Visitors{
			"Identifier": func(n estree.Node) {
				if identName(n) == "b" {
					panic("boom")
				}
				c.Report(Descriptor{MessageID: "PLAIN", Node: n})
			},
		}
	})

	diags, err := RunRule(context.Background(), rule, file, nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
	assert.Contains(t, err.Error(), "boom")
	assert.Len(t, diags, 1)
}

func TestRunRuleCancellation(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program(et.ExprStmt(et.Ident("a")), et.ExprStmt(et.Ident("b"))))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rule := Define("test/cancel", testMeta, nil, func(c *Context) Visitors {
		return Visitors{
			"Identifier": func(n estree.Node) {
				c.Report(Descriptor{MessageID: "PLAIN", Node: n})
				cancel()
			},
		}
	})

	diags, err := RunRule(ctx, rule, file, nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeCanceled, errors.GetCode(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, diags, 1, "diagnostics before the cancellation are kept")
}

func TestRunRuleTraversalInconsistency(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program(et.ExprStmt(et.Ident("a"))))
	file.Program.Body = append(file.Program.Body, file.Program.Body[0])

	rule := Define("test/any", testMeta, nil, func(*Context) Visitors { return nil })
	_, err := RunRule(context.Background(), rule, file, nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeTraversal, errors.GetCode(err))

	_, err = RunRule(context.Background(), rule, nil, nil)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestRunRuleContextState(t *testing.T) {
	id := et.Ident("x")
	file := newTestFile(t, "a.jsx", et.Program(et.ExprStmt(et.Call(et.Ident("f"), id))))

	var (
		phases    []Phase
		ancestors []string
		ctxRef    *Context
	)
	rule := Define("test/state", testMeta, nil, func(c *Context) Visitors {
		ctxRef = c
		phases = append(phases, c.Phase())
		return Visitors{
			`Identifier[name="x"]`: func(n estree.Node) {
				phases = append(phases, c.Phase())
				assert.Same(t, n, c.Current())
				for _, a := range c.Ancestors() {
					ancestors = append(ancestors, a.Type().String())
				}
				assert.Equal(t, "a.jsx", c.Filename())
				assert.NotNil(t, c.Resolver())
				assert.NotNil(t, c.Collector())
				assert.Equal(t, DefaultPragma, c.Settings().Pragma)
			},
		}
	})

	_, err := RunRule(context.Background(), rule, file, nil)
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseInit, PhaseTraversing}, phases)
	assert.Equal(t, []string{"Program", "ExpressionStatement", "CallExpression"}, ancestors)
	assert.Equal(t, PhaseDone, ctxRef.Phase())
	assert.Nil(t, ctxRef.Collector(), "per-run state is released")
	assert.Nil(t, ctxRef.GetCache("anything"))
}

// Concurrent runs on one file never see each other's diagnostics or cache.
func TestRunRuleConcurrentIsolation(t *testing.T) {
	file := newTestFile(t, "a.jsx", et.Program(
		et.ExprStmt(et.Ident("a")),
		et.ExprStmt(et.Ident("b")),
		et.ExprStmt(et.Ident("c")),
	))

	counting := func(name, message string) Rule {
		return Define(name, testMeta, nil, func(c *Context) Visitors {
			return Visitors{
				"Identifier": func(n estree.Node) {
					count, _ := c.GetCache("count").(int)
					c.SetCache("count", count+1)
					c.Report(Descriptor{
						MessageID: "FOUND",
						Node:      n,
						Data:      map[string]interface{}{"name": fmt.Sprintf("%s-%d", message, count)},
					})
				},
			}
		})
	}

	const runs = 8
	results := make([][]Diagnostic, runs)
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rule := counting(fmt.Sprintf("test/rule-%d", i%2), fmt.Sprint(i%2))
			diags, err := RunRule(context.Background(), rule, file, nil)
			assert.NoError(t, err)
			results[i] = diags
		}(i)
	}
	wg.Wait()

	for i, diags := range results {
		require.Len(t, diags, 3)
		for j, d := range diags {
			assert.Equal(t, fmt.Sprintf("test/rule-%d", i%2), d.Rule)
			assert.Equal(t, fmt.Sprintf("found %d-%d", i%2, j), d.Message)
		}
	}
}

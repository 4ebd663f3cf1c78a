package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/jsxlint/estree"
	. "github.com/input-output-hk/jsxlint/estree/estreetest"
	"github.com/input-output-hk/jsxlint/lint/linttest"
)

func TestComponentNameJSX(t *testing.T) {
	rule := NewComponentNameRule()

	valid := []string{
		"testcomponent", "testComponent", "test_component", "TestComponent",
		"CSSTransitionGroup", "BetterThanCSS", "Test1Component", "TestComponent1",
		"T3StComp0Nent", "Éurströmming", "Año", "Søknad", "T", "Modal.Header",
		"qualification.T3StComp0Nent", "Modal:Header", "H1", "Typography.P",
		"motion.div", "FULLUPPERCASE", "_TestComponent",
	}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			diags := linttest.Run(t, rule, Program(ExprStmt(Elem(name, nil))), nil)
			assert.Empty(t, diags)
		})
	}

	tests := []struct {
		name    string
		element string
		options interface{}
		want    int
	}{
		{"snake case", "Test_component", nil, 1},
		{"pascal under constant case", "TestComponent", "CONSTANT_CASE", 1},
		{"pascal under constant case object", "TestComponent", map[string]interface{}{"rule": "CONSTANT_CASE"}, 1},
		{"constant case", "_TEST_COMPONENT", "CONSTANT_CASE", 0},
		{"constant case object", "_TEST_COMPONENT", map[string]interface{}{"rule": "CONSTANT_CASE"}, 0},
		{"leading underscore pascal", "_TestComponent", map[string]interface{}{"rule": "PascalCase"}, 0},
		{"excepted", "Test_component", map[string]interface{}{"excepts": []interface{}{"Test_component"}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, rule, Program(ExprStmt(Elem(tt.element, nil))), tt.options)
			assert.Len(t, diags, tt.want)
		})
	}
}

func TestComponentNameDeclarations(t *testing.T) {
	rule := NewComponentNameRule()
	body := func() estree.Node { return Return(Elem("div", nil, Text("foo"))) }

	tests := []struct {
		name    string
		prog    *estree.Program
		options interface{}
		want    []string
	}{
		{"pascal declaration", Program(Func("AppHome", nil, body())), nil, nil},
		{"constant declaration", Program(Func("APP_HOME", nil, body())), nil, []string{"APP_HOME"}},
		{"constant declaration allowed", Program(Func("APP_HOME", nil, body())), map[string]interface{}{"rule": "CONSTANT_CASE"}, nil},
		{"pascal declaration under constant case", Program(Func("AppHome", nil, body())), map[string]interface{}{"rule": "CONSTANT_CASE"}, []string{"AppHome"}},
		{"arrow", Program(Const("APP_HOME", Arrow(nil, Block(body())))), nil, []string{"APP_HOME"}},
		{"arrow allowed", Program(Const("APP_HOME", Arrow(nil, Block(body())))), "CONSTANT_CASE", nil},
		{"function expression", Program(Const("AppHome", FuncExpr("", nil, body()))), "PascalCase", nil},
		{
			name:    "excepted function expression",
			prog:    Program(Const("AppHome", FuncExpr("", nil, body()))),
			options: map[string]interface{}{"rule": "CONSTANT_CASE", "excepts": []interface{}{"AppHome"}},
		},
		{"not a component", Program(Func("Helper_fn", nil, Return(Num(1)))), nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, rule, tt.prog, tt.options)
			var names []string
			for _, d := range diags {
				names = append(names, d.Context["name"].(string))
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestComponentNameMessage(t *testing.T) {
	diags := linttest.Run(t, NewComponentNameRule(), Program(ExprStmt(Elem("TestComponent", nil))), "CONSTANT_CASE")
	require.Len(t, diags, 1)
	assert.Equal(t, "A component name must be in CONSTANT_CASE.", diags[0].Message)
}

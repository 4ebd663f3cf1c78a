package lint

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/jsxlint/errors"
)

func noopRule(name string) Rule {
	return Define(name, testMeta, nil, func(*Context) Visitors { return nil })
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(noopRule("jsx/b"), noopRule("jsx/a")))

	err := r.Register(noopRule("jsx/a"))
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))

	rule, err := r.Get("jsx/a")
	require.NoError(t, err)
	assert.Equal(t, "jsx/a", rule.Name())

	_, err = r.Get("jsx/missing")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	var names []string
	for _, rule := range r.Rules() {
		names = append(names, rule.Name())
	}
	assert.Equal(t, []string{"jsx/a", "jsx/b"}, names)
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		ok   bool
	}{
		{"plain name", noopRule("no-leaked"), true},
		{"plugin name", noopRule("react/no-unsafe-iframe-sandbox"), true},
		{"upper case", noopRule("React/NoLeak"), false},
		{"trailing dash", noopRule("jsx/no-"), false},
		{"nested plugin", noopRule("a/b/c"), false},
		{"no messages", Define("jsx/empty", Meta{}, nil, nil), false},
		{"empty template", Define("jsx/empty", Meta{Messages: map[string]string{"A": ""}}, nil, nil), false},
		{"bad message id", Define("jsx/bad", Meta{Messages: map[string]string{"a-b": "x"}}, nil, nil), false},
		{"bad constraint", Define("jsx/gate", Meta{Messages: map[string]string{"A": "x"}, Requires: ">=banana"}, nil, nil), false},
		{"good constraint", Define("jsx/gate", Meta{Messages: map[string]string{"A": "x"}, Requires: ">=16.2.0"}, nil, nil), true},
		{"nil rule", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRule(tt.rule)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestRegistryPresets(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(noopRule("jsx/a"), noopRule("jsx/b"), noopRule("jsx/c")))

	cfg := Config{
		"jsx/a": {Severity: SeverityError},
		"jsx/b": {Severity: SeverityOff},
		"jsx/c": {Severity: SeverityWarning, Options: "strict"},
	}
	require.NoError(t, r.RegisterPreset("recommended", cfg))
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(r.RegisterPreset("recommended", cfg)))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(r.RegisterPreset("broken", Config{"jsx/z": {}})))
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(r.RegisterPreset("", cfg)))

	cfg["jsx/b"] = RuleSetting{Severity: SeverityError}
	preset, err := r.Preset("recommended")
	require.NoError(t, err)
	assert.Equal(t, SeverityOff, preset["jsx/b"].Severity)
	assert.Equal(t, []string{"jsx/a", "jsx/c"}, preset.Enabled())
	assert.Equal(t, []string{"recommended"}, r.Presets())

	_, err = r.Preset("all")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	resolved, err := r.Resolve(preset)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "jsx/a", resolved[0].Rule.Name())
	assert.Equal(t, SeverityWarning, resolved[1].Severity)
	assert.Equal(t, "strict", resolved[1].Options)

	_, err = r.Resolve(preset.With("jsx/unknown", RuleSetting{Severity: SeverityError}))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	assert.Len(t, preset, 3)
}

func TestConfigUnmarshal(t *testing.T) {
	data := `{
		"jsx/a": "warn",
		"jsx/b": ["error", "always"],
		"jsx/c": ["off"],
		"jsx/d": {"severity": "info", "options": {"allow": "as-needed"}},
		"jsx/e": ["error", {"rule": "PascalCase", "excepts": ["x"]}]
	}`
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(data), &cfg))

	assert.Equal(t, RuleSetting{Severity: SeverityWarning}, cfg["jsx/a"])
	assert.Equal(t, RuleSetting{Severity: SeverityError, Options: "always"}, cfg["jsx/b"])
	assert.Equal(t, SeverityOff, cfg["jsx/c"].Severity)
	assert.Nil(t, cfg["jsx/c"].Options)
	assert.Equal(t, SeverityInfo, cfg["jsx/d"].Severity)
	assert.Equal(t, map[string]interface{}{"allow": "as-needed"}, cfg["jsx/d"].Options)
	assert.Equal(t, map[string]interface{}{"rule": "PascalCase", "excepts": []interface{}{"x"}}, cfg["jsx/e"].Options)
	assert.Equal(t, []string{"jsx/a", "jsx/b", "jsx/d", "jsx/e"}, cfg.Enabled())
}

func TestConfigUnmarshalErrors(t *testing.T) {
	for _, data := range []string{
		`{"jsx/a": "loud"}`,
		`{"jsx/a": []}`,
		`{"jsx/a": ["error", 1, 2]}`,
		`{"jsx/a": 1}`,
	} {
		var cfg Config
		assert.Error(t, json.Unmarshal([]byte(data), &cfg), data)
	}
}

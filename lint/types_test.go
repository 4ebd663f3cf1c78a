package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"error", SeverityError, false},
		{"Warn", SeverityWarning, false},
		{"warning", SeverityWarning, false},
		{"info", SeverityInfo, false},
		{"off", SeverityOff, false},
		{"fatal", SeverityOff, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityText(t *testing.T) {
	text, err := SeverityWarning.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warning", string(text))

	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("info")))
	assert.Equal(t, SeverityInfo, s)
	assert.Error(t, s.UnmarshalText([]byte("loud")))
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestFixApply(t *testing.T) {
	src := "<input disabled={true} />"
	fix := Fix{Range: estree.Range{7, 22}, Text: "disabled"}
	assert.Equal(t, "<input disabled />", fix.Apply(src))

	out := Fix{Range: estree.Range{5, 100}, Text: "x"}
	assert.Equal(t, src, out.Apply(src))
}

func TestDiagnostic(t *testing.T) {
	d := Diagnostic{
		Rule:      "jsx/no-missing-key",
		MessageID: "MISSING",
		Message:   "Missing key",
		Location:  estree.SourceLocation{Start: estree.Position{Line: 3, Column: 4}},
	}
	assert.True(t, d.IsValid())
	assert.Equal(t, "3:5 [jsx/no-missing-key] Missing key", d.String())

	d.File = "App.jsx"
	assert.Equal(t, "App.jsx:3:5 [jsx/no-missing-key] Missing key", d.String())

	assert.False(t, Diagnostic{Rule: "r"}.IsValid())

	first := d.WithContext("a", 1)
	second := first.WithContext("b", 2)
	assert.Len(t, first.Context, 1)
	assert.Len(t, second.Context, 2)
	assert.Nil(t, d.Context)

	fixed := d.WithFix("drop", estree.Range{0, 1}, "")
	require.NotNil(t, fixed.Fix)
	assert.Equal(t, "drop", fixed.Fix.Description)
	assert.Nil(t, d.Fix)
}

func TestSettingsSatisfies(t *testing.T) {
	s := DefaultSettings()
	ok, err := s.Satisfies(">=16.2.0")
	require.NoError(t, err)
	assert.True(t, ok)

	s.ReactVersion = "16.0.0"
	ok, err = s.Satisfies(">=16.2.0")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Satisfies("")
	require.NoError(t, err)
	assert.True(t, ok)

	s.ReactVersion = "sixteen"
	_, err = s.Satisfies(">=16.2.0")
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestSettingsWithDefaults(t *testing.T) {
	s := Settings{ReactVersion: "18.2.0"}.WithDefaults()
	assert.Equal(t, DefaultPragma, s.Pragma)
	assert.Equal(t, DefaultFragment, s.Fragment)
	assert.Equal(t, "18.2.0", s.ReactVersion)
	assert.NoError(t, s.Validate())
}

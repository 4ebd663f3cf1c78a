// Package lint runs syntax-tree rules over JSX/React source files. A rule
// declares its messages, option schema and a map of selector-keyed visitor
// callbacks; RunRule feeds the tree to those callbacks in document order and
// collects the diagnostics they report.
package lint

import (
	"fmt"
	"strings"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/estree"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	// SeverityError indicates a problem that should fail the lint run.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be addressed.
	SeverityWarning
	// SeverityInfo indicates a suggestion or style improvement.
	SeverityInfo
	// SeverityOff disables a rule in a Config.
	SeverityOff
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name. "warn" is accepted for "warning".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "off":
		return SeverityOff, nil
	}
	return SeverityOff, errors.Newf(errors.CodeInvalidConfig, "unknown severity %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Fix is a single text replacement that resolves a diagnostic.
type Fix struct {
	// Description explains what the fix does.
	Description string `json:"description,omitempty"`
	// Range is the replaced span of the source text.
	Range estree.Range `json:"range"`
	// Text replaces the span.
	Text string `json:"text"`
}

// Apply returns src with the fix applied.
func (f Fix) Apply(src string) string {
	start, end := f.Range.Start(), f.Range.End()
	if start < 0 || end > len(src) || start > end {
		return src
	}
	return src[:start] + f.Text + src[end:]
}

// Diagnostic is one reported rule violation.
type Diagnostic struct {
	// Rule is the name of the rule that reported the diagnostic.
	Rule string `json:"rule"`
	// MessageID is the key of the rule message the diagnostic was rendered from.
	MessageID string `json:"messageId"`
	// Message is the rendered message.
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	// File is the name of the linted file.
	File     string                `json:"file,omitempty"`
	Range    estree.Range          `json:"range"`
	Location estree.SourceLocation `json:"location"`
	// Node is the reported node. It is not serialized.
	Node estree.Node `json:"-"`
	// Fix contains an optional automatic fix.
	Fix *Fix `json:"fix,omitempty"`
	// Context provides additional metadata about the diagnostic.
	Context map[string]interface{} `json:"context,omitempty"`
}

// String returns a formatted string representation of the diagnostic.
// Columns are shown 1-based.
func (d Diagnostic) String() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d [%s] %s",
			d.File,
			d.Location.Start.Line,
			d.Location.Start.Column+1,
			d.Rule,
			d.Message)
	}
	return fmt.Sprintf("%d:%d [%s] %s", d.Location.Start.Line, d.Location.Start.Column+1, d.Rule, d.Message)
}

// IsValid checks if the diagnostic has all required fields.
func (d Diagnostic) IsValid() bool {
	return d.Rule != "" && d.MessageID != "" && d.Message != ""
}

// WithFix adds a fix to a diagnostic and returns the modified diagnostic.
func (d Diagnostic) WithFix(description string, r estree.Range, text string) Diagnostic {
	d.Fix = &Fix{Description: description, Range: r, Text: text}
	return d
}

// WithContext adds context metadata to a diagnostic and returns the modified
// diagnostic.
func (d Diagnostic) WithContext(key string, value interface{}) Diagnostic {
	ctx := make(map[string]interface{}, len(d.Context)+1)
	for k, v := range d.Context {
		ctx[k] = v
	}
	ctx[key] = value
	d.Context = ctx
	return d
}

package lint

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/input-output-hk/jsxlint/errors"
)

// Format represents the output format for reporting diagnostics.
type Format int

const (
	// FormatText outputs diagnostics in a human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs diagnostics in JSON format.
	FormatJSON
	// FormatSARIF outputs diagnostics in SARIF 2.1.0.
	FormatSARIF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	}
	return FormatText, errors.Newf(errors.CodeInvalidConfig, "unknown output format %q", s)
}

// Reporter handles formatting and outputting diagnostics for the host.
type Reporter struct {
	writer   io.Writer
	format   Format
	registry *Registry

	errorColor   *color.Color
	warningColor *color.Color
	infoColor    *color.Color
	dimColor     *color.Color
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithColor enables or disables colored text output. Color is off by
// default.
func WithColor(enabled bool) ReporterOption {
	return func(r *Reporter) {
		for _, c := range []*color.Color{r.errorColor, r.warningColor, r.infoColor, r.dimColor} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithRegistry supplies rule descriptions for SARIF output.
func WithRegistry(registry *Registry) ReporterOption {
	return func(r *Reporter) {
		r.registry = registry
	}
}

// NewReporter creates a new Reporter with the specified output writer and format.
func NewReporter(writer io.Writer, format Format, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		writer:       writer,
		format:       format,
		errorColor:   color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow),
		infoColor:    color.New(color.FgBlue),
		dimColor:     color.New(color.Faint),
	}
	WithColor(false)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes the diagnostics to the output writer in the configured
// format. Diagnostics are sorted by location first.
func (r *Reporter) Report(diags []Diagnostic) error {
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareByLocation(sorted[i], sorted[j])
	})

	switch r.format {
	case FormatText:
		return r.reportText(sorted)
	case FormatJSON:
		return r.reportJSON(sorted)
	case FormatSARIF:
		return r.reportSARIF(sorted)
	default:
		return errors.Newf(errors.CodeInvalidConfig, "unsupported format: %s", r.format)
	}
}

func (r *Reporter) severityColor(s Severity) *color.Color {
	switch s {
	case SeverityError:
		return r.errorColor
	case SeverityWarning:
		return r.warningColor
	default:
		return r.infoColor
	}
}

// reportText outputs one line per diagnostic followed by a summary.
func (r *Reporter) reportText(diags []Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	var errs, warnings int
	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
		loc := fmt.Sprintf("%s:%d:%d", d.File, d.Location.Start.Line, d.Location.Start.Column+1)
		if _, err := fmt.Fprintf(r.writer, "%s %s %s %s\n",
			loc,
			r.severityColor(d.Severity).Sprint(d.Severity.String()),
			d.Message,
			r.dimColor.Sprintf("[%s]", d.Rule)); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to write text output")
		}
	}
	if _, err := fmt.Fprintf(r.writer, "\n%d problems (%d errors, %d warnings)\n", len(diags), errs, warnings); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to write text output")
	}
	return nil
}

// reportJSON outputs {"diagnostics": [...]}.
func (r *Reporter) reportJSON(diags []Diagnostic) error {
	if diags == nil {
		diags = []Diagnostic{}
	}
	output := struct {
		Diagnostics []Diagnostic `json:"diagnostics"`
	}{Diagnostics: diags}
	return r.writeJSON(output)
}

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           sarifRegion   `json:"region"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// reportSARIF outputs diagnostics in SARIF 2.1.0. Columns are 1-based.
func (r *Reporter) reportSARIF(diags []Diagnostic) error {
	seen := make(map[string]bool)
	rules := []sarifRule{}
	results := []sarifResult{}
	for _, d := range diags {
		if !seen[d.Rule] {
			seen[d.Rule] = true
			rules = append(rules, sarifRule{ID: d.Rule, Name: d.Rule, ShortDescription: sarifMessage{Text: r.describe(d)}})
		}
		results = append(results, sarifResult{
			RuleID:  d.Rule,
			Level:   sarifLevel(d.Severity),
			Message: sarifMessage{Text: d.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifact{URI: d.File},
					Region: sarifRegion{
						StartLine:   d.Location.Start.Line,
						StartColumn: d.Location.Start.Column + 1,
						EndLine:     d.Location.End.Line,
						EndColumn:   d.Location.End.Column + 1,
					},
				},
			}},
		})
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })

	return r.writeJSON(sarifLog{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           "jsxlint",
				InformationURI: "https://github.com/input-output-hk/jsxlint",
				Rules:          rules,
			}},
			Results: results,
		}},
	})
}

// describe returns the rule's description, falling back to the first
// diagnostic's message.
func (r *Reporter) describe(d Diagnostic) string {
	if r.registry != nil {
		if rule, err := r.registry.Get(d.Rule); err == nil && rule.Meta().Description != "" {
			return rule.Meta().Description
		}
	}
	return d.Message
}

func sarifLevel(s Severity) string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

func (r *Reporter) writeJSON(v interface{}) error {
	data, err := json.Marshal(v, jsontext.WithIndent("  "), json.Deterministic(true))
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to encode output")
	}
	if _, err := r.writer.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to write output")
	}
	return nil
}

// compareByLocation orders diagnostics by file, line, column, then rule.
func compareByLocation(a, b Diagnostic) bool {
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Location.Start.Line != b.Location.Start.Line {
		return a.Location.Start.Line < b.Location.Start.Line
	}
	if a.Location.Start.Column != b.Location.Start.Column {
		return a.Location.Start.Column < b.Location.Start.Column
	}
	return a.Rule < b.Rule
}

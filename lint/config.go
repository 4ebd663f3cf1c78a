package lint

import (
	"sort"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/input-output-hk/jsxlint/errors"
)

// RuleSetting configures one rule.
//
// In JSON it is written as a severity ("warn"), a severity followed by the
// options (["error", "always"]) or an object with severity and options keys.
type RuleSetting struct {
	Severity Severity    `json:"severity"`
	Options  interface{} `json:"options,omitempty"`
}

// UnmarshalJSON accepts the three forms described on RuleSetting.
func (s *RuleSetting) UnmarshalJSON(data []byte) error {
	raw := jsontext.Value(data)
	switch raw.Kind() {
	case '"':
		var sev Severity
		if err := json.Unmarshal(data, &sev); err != nil {
			return err
		}
		*s = RuleSetting{Severity: sev}
		return nil
	case '[':
		var parts []jsontext.Value
		if err := json.Unmarshal(data, &parts); err != nil {
			return errors.Wrap(err, errors.CodeInvalidConfig, "invalid rule setting")
		}
		if len(parts) == 0 || len(parts) > 2 {
			return errors.Newf(errors.CodeInvalidConfig, "rule setting must have one or two entries, got %d", len(parts))
		}
		var out RuleSetting
		if err := json.Unmarshal(parts[0], &out.Severity); err != nil {
			return err
		}
		if len(parts) == 2 {
			if err := json.Unmarshal(parts[1], &out.Options); err != nil {
				return errors.Wrap(err, errors.CodeInvalidConfig, "invalid rule options")
			}
		}
		*s = out
		return nil
	case '{':
		type plain RuleSetting
		var out plain
		if err := json.Unmarshal(data, &out); err != nil {
			return errors.Wrap(err, errors.CodeInvalidConfig, "invalid rule setting")
		}
		*s = RuleSetting(out)
		return nil
	}
	return errors.Newf(errors.CodeInvalidConfig, "invalid rule setting %s", data)
}

// Config maps rule names to their settings.
type Config map[string]RuleSetting

// Enabled returns the names of rules whose severity is not off, sorted.
func (c Config) Enabled() []string {
	var out []string
	for name, s := range c {
		if s.Severity != SeverityOff {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Clone returns a shallow copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// With returns a copy of c with name set to s.
func (c Config) With(name string, s RuleSetting) Config {
	out := c.Clone()
	out[name] = s
	return out
}

package lint

import (
	"sort"

	"github.com/input-output-hk/jsxlint/errors"
)

// Registry holds the rules and presets known to a host. It is built at
// start-up and passed to whatever runs rules; there is no global registry.
// A Registry is not safe for concurrent registration, but may be read
// concurrently once built.
type Registry struct {
	rules   map[string]Rule
	presets map[string]Config
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:   make(map[string]Rule),
		presets: make(map[string]Config),
	}
}

// Register adds rules after validating their declarations. Registering a
// name twice fails with CodeAlreadyExists.
func (r *Registry) Register(rules ...Rule) error {
	for _, rule := range rules {
		if err := ValidateRule(rule); err != nil {
			return err
		}
		if _, exists := r.rules[rule.Name()]; exists {
			return errors.Newf(errors.CodeAlreadyExists, "rule %s is already registered", rule.Name())
		}
		r.rules[rule.Name()] = rule
	}
	return nil
}

// Get returns the rule called name.
//
//nolint:ireturn // Registry lookups return the registered interface
func (r *Registry) Get(name string) (Rule, error) {
	rule, ok := r.rules[name]
	if !ok {
		return nil, errors.Newf(errors.CodeNotFound, "rule %s is not registered", name)
	}
	return rule, nil
}

// Rules returns every registered rule sorted by name.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// RegisterPreset adds a named configuration. Every rule it mentions must be
// registered already.
func (r *Registry) RegisterPreset(name string, cfg Config) error {
	if name == "" {
		return errors.New(errors.CodeInvalidConfig, "preset name must not be empty")
	}
	if _, exists := r.presets[name]; exists {
		return errors.Newf(errors.CodeAlreadyExists, "preset %s is already registered", name)
	}
	for rule := range cfg {
		if _, ok := r.rules[rule]; !ok {
			return errors.Newf(errors.CodeNotFound, "preset %s references unregistered rule %s", name, rule)
		}
	}
	r.presets[name] = cfg.Clone()
	return nil
}

// Preset returns a copy of the named preset.
func (r *Registry) Preset(name string) (Config, error) {
	cfg, ok := r.presets[name]
	if !ok {
		return nil, errors.Newf(errors.CodeNotFound, "preset %s is not registered", name)
	}
	return cfg.Clone(), nil
}

// Presets returns the preset names in sorted order.
func (r *Registry) Presets() []string {
	out := make([]string, 0, len(r.presets))
	for name := range r.presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ConfiguredRule is a rule with the severity and options it runs with.
type ConfiguredRule struct {
	Rule     Rule
	Severity Severity
	Options  interface{}
}

// Resolve looks up the enabled rules of cfg, sorted by name.
func (r *Registry) Resolve(cfg Config) ([]ConfiguredRule, error) {
	var out []ConfiguredRule
	for _, name := range cfg.Enabled() {
		rule, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		setting := cfg[name]
		out = append(out, ConfiguredRule{Rule: rule, Severity: setting.Severity, Options: setting.Options})
	}
	return out, nil
}

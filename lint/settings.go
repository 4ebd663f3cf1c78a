package lint

import (
	"github.com/Masterminds/semver/v3"

	"github.com/input-output-hk/jsxlint/errors"
)

const (
	// DefaultPragma is the default name of the React namespace.
	DefaultPragma = "React"
	// DefaultFragment is the default name of the fragment component.
	DefaultFragment = "Fragment"
)

// Settings are shared by every rule in a run.
type Settings struct {
	// ReactVersion is the React version the code targets. Empty means the
	// latest version, so every version-gated rule runs.
	ReactVersion string `json:"reactVersion,omitempty"`
	// Pragma is the identifier React is imported as.
	Pragma string `json:"pragma,omitempty"`
	// Fragment is the name of the fragment component on Pragma.
	Fragment string `json:"fragment,omitempty"`
}

// DefaultSettings returns the settings used when none are given.
func DefaultSettings() Settings {
	return Settings{Pragma: DefaultPragma, Fragment: DefaultFragment}
}

// WithDefaults returns s with empty fields set to their defaults.
func (s Settings) WithDefaults() Settings {
	if s.Pragma == "" {
		s.Pragma = DefaultPragma
	}
	if s.Fragment == "" {
		s.Fragment = DefaultFragment
	}
	return s
}

// Validate checks that ReactVersion is a valid semantic version.
func (s Settings) Validate() error {
	if s.ReactVersion == "" {
		return nil
	}
	if _, err := semver.NewVersion(s.ReactVersion); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "invalid React version "+s.ReactVersion)
	}
	return nil
}

// Satisfies reports whether the configured React version meets constraint.
// An empty constraint or version is always satisfied.
func (s Settings) Satisfies(constraint string) (bool, error) {
	if constraint == "" || s.ReactVersion == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeInvalidConfig, "invalid version constraint "+constraint)
	}
	v, err := semver.NewVersion(s.ReactVersion)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeInvalidConfig, "invalid React version "+s.ReactVersion)
	}
	return c.Check(v), nil
}

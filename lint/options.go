package lint

import (
	"log/slog"
)

// runOptions holds configuration for one RunRule call.
type runOptions struct {
	logger   *slog.Logger
	settings Settings
	severity Severity
}

// RunOption is a functional option for configuring RunRule.
type RunOption func(*runOptions)

// WithLogger configures the run with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) RunOption {
	return func(opts *runOptions) {
		opts.logger = logger
	}
}

// WithSettings configures the shared settings. Empty fields take their
// defaults.
func WithSettings(settings Settings) RunOption {
	return func(opts *runOptions) {
		opts.settings = settings.WithDefaults()
	}
}

// WithSeverity sets the severity stamped on every diagnostic of the run.
func WithSeverity(severity Severity) RunOption {
	return func(opts *runOptions) {
		opts.severity = severity
	}
}

// defaultRunOptions returns the default configuration options.
func defaultRunOptions() *runOptions {
	return &runOptions{
		logger:   nil, // No default logger
		settings: DefaultSettings(),
		severity: SeverityError,
	}
}

// applyRunOptions applies the given options to the run options.
func applyRunOptions(opts *runOptions, options []RunOption) {
	for _, option := range options {
		option(opts)
	}
}

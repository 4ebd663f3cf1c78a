// Package runner hosts the lint engine: it loads file bundles from a
// filesystem and runs a rule configuration over many files in parallel.
package runner

import (
	"cmp"
	"context"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/input-output-hk/jsxlint/errors"
	"github.com/input-output-hk/jsxlint/lint"
)

// Runner runs configured rules over files. Files are analyzed in parallel;
// the rules of one file run one after another.
type Runner struct {
	registry    *lint.Registry
	logger      *slog.Logger
	concurrency int
	settings    lint.Settings
}

// Option is a functional option for configuring a Runner.
type Option func(*Runner)

// WithLogger configures the runner with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithConcurrency bounds the number of files analyzed at once. Values below
// one are ignored.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithSettings sets the settings every rule run sees.
func WithSettings(settings lint.Settings) Option {
	return func(r *Runner) {
		r.settings = settings.WithDefaults()
	}
}

// New creates a runner that looks rules up in registry.
func New(registry *lint.Registry, opts ...Option) *Runner {
	r := &Runner{
		registry:    registry,
		concurrency: runtime.GOMAXPROCS(0),
		settings:    lint.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is the outcome of a run.
type Result struct {
	// Diagnostics are grouped by file in input order and sorted by position
	// within a file.
	Diagnostics []lint.Diagnostic
	// Errors holds one *lint.RuleError per failed rule run. A failed rule
	// does not stop the other rules on the same file.
	Errors []error
}

// Failed reports whether any rule run failed.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

type fileResult struct {
	diags []lint.Diagnostic
	errs  []error
}

// Run resolves cfg and runs it over files. It returns an error only when the
// configuration cannot be resolved, a file is nil or ctx is canceled; rule
// failures are collected in the result. A canceled run still returns the
// diagnostics reported before cancellation.
func (r *Runner) Run(ctx context.Context, cfg lint.Config, files []*lint.File) (*Result, error) {
	rules, err := r.registry.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	for i, file := range files {
		if file == nil {
			return nil, errors.Newf(errors.CodeInvalidInput, "file %d is nil", i)
		}
	}
	if len(files) == 0 || len(rules) == 0 {
		return &Result{}, nil
	}

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(r.concurrency, len(files)))

	for i, file := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := r.runFile(gctx, rules, file)
			results[i] = res
			return err
		})
	}
	err = g.Wait()

	out := &Result{}
	for _, res := range results {
		out.Diagnostics = append(out.Diagnostics, res.diags...)
		out.Errors = append(out.Errors, res.errs...)
	}
	if err != nil {
		return out, errors.Wrap(err, errors.CodeCanceled, "lint run canceled")
	}
	return out, nil
}

// RunFile runs cfg over a single file.
func (r *Runner) RunFile(ctx context.Context, cfg lint.Config, file *lint.File) (*Result, error) {
	return r.Run(ctx, cfg, []*lint.File{file})
}

func (r *Runner) runFile(ctx context.Context, rules []lint.ConfiguredRule, file *lint.File) (fileResult, error) {
	var res fileResult
	for _, cr := range rules {
		diags, err := lint.RunRule(ctx, cr.Rule, file, cr.Options,
			lint.WithLogger(r.logger),
			lint.WithSettings(r.settings),
			lint.WithSeverity(cr.Severity),
		)
		res.diags = append(res.diags, diags...)
		if err == nil {
			continue
		}
		if errors.HasCode(err, errors.CodeCanceled) {
			return res, err
		}
		if r.logger != nil {
			r.logger.WarnContext(ctx, "rule failed", "rule", cr.Rule.Name(), "file", file.Name, "error", err)
		}
		res.errs = append(res.errs, err)
	}

	slices.SortStableFunc(res.diags, func(a, b lint.Diagnostic) int {
		return cmp.Compare(a.Range.Start(), b.Range.Start())
	})
	return res, nil
}

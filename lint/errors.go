package lint

import (
	stderrors "errors"
	"fmt"
)

// RuleError ties a failure to the rule and file it happened in. The wrapped
// error carries the code: CodeInvalidConfig, CodeTraversal, CodeCanceled or
// CodeInternal for a recovered panic.
type RuleError struct {
	Rule string // Name of the rule that failed
	File string // Name of the file being linted
	Err  error  // The underlying error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("rule %s: %v", e.Rule, e.Err)
	}
	return fmt.Sprintf("rule %s on %s: %v", e.Rule, e.File, e.Err)
}

// Unwrap returns the underlying error for error chain traversal.
func (e *RuleError) Unwrap() error {
	return e.Err
}

// IsRuleError checks if an error is a RuleError or contains one in its chain.
func IsRuleError(err error) bool {
	var re *RuleError
	return stderrors.As(err, &re)
}

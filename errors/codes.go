// Package errors provides the structured error type shared by the lint engine.
// It extends Go's standard error handling with string error codes and
// context metadata so hosts can tell configuration problems apart from
// malformed input and internal failures.
package errors

// ErrorCode represents a specific error condition in the lint engine.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Lookup errors.

	// CodeNotFound indicates a requested rule or preset does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a rule or preset is already registered.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Validation errors.

	// CodeInvalidInput indicates the provided syntax tree or scope table is malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a rule configuration error: invalid options,
	// an unknown message id or an unparsable selector.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeSchemaFailed indicates rule options failed schema validation.
	CodeSchemaFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	// Traversal errors.

	// CodeTraversal indicates the syntax tree violates its structural invariants
	// (missing or wrong parent link, cycle, node shared between parents).
	CodeTraversal ErrorCode = "TRAVERSAL_INCONSISTENCY"

	// CodeCanceled indicates the host aborted a run.
	CodeCanceled ErrorCode = "CANCELED"

	// System errors.

	// CodeInternal indicates an internal failure, such as a panicking rule.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Package types defines the shared vocabulary for the jirakit error
// primitives: the error code taxonomy derived from HTTP status codes and the
// diagnostics mode controlling how error detail is surfaced.
package types

package jiraerror

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/jirakit/jirakit/pkg/config"
	"github.com/jirakit/jirakit/pkg/types"
)

// Error represents one failed Jira API operation. It is constructed once at
// the failure site and read-only afterwards; rendering happens on demand.
type Error struct {
	// StatusCode is the HTTP status of the failed operation, 0 when unknown.
	StatusCode int

	// Message is optional free text describing the failure.
	Message string

	// URL is the request URL related to the failure, if known.
	URL string

	// Request is the request side of the exchange, if captured.
	Request Exchange

	// Response is the response side of the exchange, if captured.
	Response Exchange

	// Headers is an extra header set captured at the failure site.
	Headers http.Header

	// ErrorID uniquely identifies this failure instance.
	ErrorID string

	diag      config.Diagnostics
	cause     error
	sanitizer *Sanitizer
}

// New creates an Error with the given message and diagnostics settings.
// The diagnostics value is frozen into the error; later environment changes
// do not affect rendering.
func New(message string, diag config.Diagnostics) *Error {
	return &Error{
		Message:   message,
		ErrorID:   uuid.NewString(),
		diag:      diag,
		sanitizer: defaultSanitizerInstance,
	}
}

// FromResponse creates an Error from a failed HTTP response, capturing the
// status code, the request URL, and a response snapshot.
func FromResponse(resp *http.Response, message string, diag config.Diagnostics) *Error {
	e := New(message, diag)
	if resp == nil {
		return e
	}
	e.StatusCode = resp.StatusCode
	if resp.Request != nil && resp.Request.URL != nil {
		e.URL = resp.Request.URL.String()
	}
	e.Response = SnapshotResponse(resp)
	return e
}

// WithStatusCode sets the status code and returns the error for chaining
func (e *Error) WithStatusCode(statusCode int) *Error {
	e.StatusCode = statusCode
	return e
}

// WithURL sets the URL and returns the error for chaining
func (e *Error) WithURL(url string) *Error {
	e.URL = url
	return e
}

// WithRequest sets the request exchange and returns the error for chaining
func (e *Error) WithRequest(req Exchange) *Error {
	e.Request = req
	return e
}

// WithResponse sets the response exchange and returns the error for chaining
func (e *Error) WithResponse(resp Exchange) *Error {
	e.Response = resp
	return e
}

// WithHeaders sets the captured header map and returns the error for chaining
func (e *Error) WithHeaders(headers http.Header) *Error {
	e.Headers = headers
	return e
}

// WithCause sets the underlying error and returns the error for chaining
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// WithSanitizer overrides the sanitizer used at render time
func (e *Error) WithSanitizer(s *Sanitizer) *Error {
	e.sanitizer = s
	return e
}

// Diagnostics returns the settings frozen at construction
func (e *Error) Diagnostics() config.Diagnostics {
	return e.diag
}

// Code classifies the failure from its status code
func (e *Error) Code() types.ErrorCode {
	return types.ClassifyHTTPError(e.StatusCode)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *Error) Unwrap() error {
	return e.cause
}

// Render builds the diagnostic string. Captured headers and bodies pass
// through the sanitizer before inclusion.
//
// In file mode the detail block is written to a fresh temporary file and the
// returned string references its path instead of inlining the block; a
// filesystem failure there is returned as the error. In inline mode Render
// never fails.
//
// Rendering in file mode creates a new file every call; the file is never
// removed by this package.
func (e *Error) Render() (string, error) {
	summary := fmt.Sprintf("JiraError HTTP %d", e.StatusCode)
	if e.URL != "" {
		summary += fmt.Sprintf(" url: %s", e.URL)
	}

	details := e.details()

	if e.diag.Mode == types.DiagnosticsFile {
		path, err := writeDetailFile(details)
		if err != nil {
			return "", err
		}
		return summary + " details: " + path, nil
	}

	if e.Message != "" {
		summary += "\n\ttext: " + e.Message
	}
	return summary + "\n\t" + details, nil
}

// Error implements the error interface. The interface cannot carry a
// tempfile write failure, so one is reported inline in the returned text.
func (e *Error) Error() string {
	s, err := e.Render()
	if err != nil {
		return fmt.Sprintf("JiraError HTTP %d (diagnostics unavailable: %v)", e.StatusCode, err)
	}
	return s
}

// details builds the tab-indented detail block from whichever exchange
// capabilities are present.
func (e *Error) details() string {
	var b strings.Builder
	e.writeExchange(&b, "request", e.Request)
	e.writeExchange(&b, "response", e.Response)
	return b.String()
}

func (e *Error) writeExchange(b *strings.Builder, label string, ex Exchange) {
	if ex == nil {
		return
	}
	if headers, ok := ex.Headers(); ok {
		fmt.Fprintf(b, "\n\t%s headers = %v", label, e.sanitizer.SanitizeHeaders(headers))
	}
	if body, ok := ex.Body(); ok {
		fmt.Fprintf(b, "\n\t%s text = %s", label, e.sanitizer.SanitizeBody(body))
	}
}

func writeDetailFile(details string) (string, error) {
	f, err := os.CreateTemp("", "jiraerror-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create diagnostics file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(details); err != nil {
		// The path is not returned on this branch, so the file would be
		// unfindable garbage.
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write diagnostics file: %w", err)
	}
	return f.Name(), nil
}

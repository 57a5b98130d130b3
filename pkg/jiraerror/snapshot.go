package jiraerror

import (
	"bytes"
	"io"
	"net/http"
)

// Exchange describes one side of an HTTP exchange for diagnostic rendering.
// Each accessor reports whether the capability is present; an absent
// capability means the corresponding detail line is omitted, never an error.
type Exchange interface {
	// Headers returns the captured headers, if any were captured.
	Headers() (http.Header, bool)

	// Body returns the captured body text, if any was captured.
	Body() (string, bool)
}

// Snapshot is an immutable Exchange captured at the failure site.
// Values are stored unsanitized; masking happens at render time.
type Snapshot struct {
	headers    http.Header
	hasHeaders bool
	body       string
	hasBody    bool
}

// NewSnapshot creates a snapshot with both headers and body captured
func NewSnapshot(headers http.Header, body string) *Snapshot {
	return &Snapshot{headers: headers, hasHeaders: true, body: body, hasBody: true}
}

// HeadersOnly creates a snapshot with no body capability
func HeadersOnly(headers http.Header) *Snapshot {
	return &Snapshot{headers: headers, hasHeaders: true}
}

// BodyOnly creates a snapshot with no headers capability
func BodyOnly(body string) *Snapshot {
	return &Snapshot{body: body, hasBody: true}
}

// Headers implements Exchange
func (s *Snapshot) Headers() (http.Header, bool) {
	if s == nil || !s.hasHeaders {
		return nil, false
	}
	return s.headers, true
}

// Body implements Exchange
func (s *Snapshot) Body() (string, bool) {
	if s == nil || !s.hasBody {
		return "", false
	}
	return s.body, true
}

// SnapshotRequest captures headers and body from an HTTP request.
// The body is read and restored so the request can still be sent.
func SnapshotRequest(req *http.Request) *Snapshot {
	if req == nil {
		return nil
	}

	snap := &Snapshot{headers: req.Header.Clone(), hasHeaders: true}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err == nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			snap.body = string(body)
			snap.hasBody = true
		}
	}
	return snap
}

// SnapshotResponse captures headers and body from an HTTP response.
// The body is read and restored so the response can still be consumed.
func SnapshotResponse(resp *http.Response) *Snapshot {
	if resp == nil {
		return nil
	}

	snap := &Snapshot{headers: resp.Header.Clone(), hasHeaders: true}
	if resp.Body != nil {
		body, err := io.ReadAll(resp.Body)
		if err == nil {
			resp.Body = io.NopCloser(bytes.NewReader(body))
			snap.body = string(body)
			snap.hasBody = true
		}
	}
	return snap
}

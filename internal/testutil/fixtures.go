// Package testutil provides HTTP fixtures for jirakit tests.
package testutil

import (
	"io"
	"net/http"
	"net/url"
	"strings"
)

// NewRequest builds an HTTP request with the given headers and body
func NewRequest(method, rawURL string, headers http.Header, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, rawURL, reader)
	if err != nil {
		panic(err)
	}
	for key, values := range headers {
		req.Header[key] = values
	}
	return req
}

// NewResponse builds an HTTP response with the given headers and body.
// The request URL is attached so error constructors can read it.
func NewResponse(statusCode int, rawURL string, headers http.Header, body string) *http.Response {
	resp := &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
	for key, values := range headers {
		resp.Header[key] = values
	}
	if rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			panic(err)
		}
		resp.Request = &http.Request{Method: http.MethodGet, URL: u}
	}
	return resp
}

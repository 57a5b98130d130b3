package jiraerror

import (
	"net/http"
	"strings"
	"testing"
)

func TestSanitizer_SanitizeBody(t *testing.T) {
	s := DefaultSanitizer()

	tests := []struct {
		name        string
		input       string
		contains    []string // strings that should be present in output
		notContains []string // strings that should NOT be present in output
	}{
		{
			name:        "password in JSON",
			input:       `{"user": "admin", "password": "hunter2"}`,
			contains:    []string{`"password":"********"`, "admin"},
			notContains: []string{"hunter2"},
		},
		{
			name:        "token in JSON",
			input:       `{"token": "tok-123"}`,
			contains:    []string{Mask},
			notContains: []string{"tok-123"},
		},
		{
			name:        "secret and access_token",
			input:       `{"secret": "s1", "access_token": "a1"}`,
			contains:    []string{Mask},
			notContains: []string{"s1", "a1"},
		},
		{
			name:        "uppercase key matches case-insensitively",
			input:       `{"PASSWORD": "hunter2"}`,
			contains:    []string{`"PASSWORD":"********"`},
			notContains: []string{"hunter2"},
		},
		{
			name:        "nested object",
			input:       `{"user": "a", "credentials": {"password": "p"}}`,
			contains:    []string{`"user":"a"`, Mask},
			notContains: []string{`"p"`},
		},
		{
			name:        "objects inside array scrubbed independently",
			input:       `{"users": [{"password": "p1"}, {"password": "p2"}, {"name": "n"}]}`,
			contains:    []string{Mask, `"name":"n"`},
			notContains: []string{"p1", "p2"},
		},
		{
			name:        "sibling keys untouched",
			input:       `{"model": "jira", "password": "p", "count": 3}`,
			contains:    []string{`"model":"jira"`, `"count":3`},
			notContains: []string{`"p"`},
		},
		{
			name:     "masking is idempotent",
			input:    `{"password": "********"}`,
			contains: []string{`"password":"********"`},
		},
		{
			name:        "form-encoded fallback",
			input:       `password=abc123&x=1`,
			contains:    []string{"password=********&x=1"},
			notContains: []string{"abc123"},
		},
		{
			name:        "malformed JSON with quoted password",
			input:       `{"password": "abc123",`,
			contains:    []string{`"password": "********"`},
			notContains: []string{"abc123"},
		},
		{
			name:     "plain text without secrets unchanged",
			input:    "service unavailable, try later",
			contains: []string{"service unavailable, try later"},
		},
		{
			name:     "empty string unchanged",
			input:    "",
			contains: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SanitizeBody(tt.input)

			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("expected result to contain %q, got: %s", want, result)
				}
			}
			for _, banned := range tt.notContains {
				if strings.Contains(result, banned) {
					t.Errorf("expected result NOT to contain %q, got: %s", banned, result)
				}
			}
		})
	}
}

func TestSanitizer_SanitizeBody_EmptyUnchanged(t *testing.T) {
	s := DefaultSanitizer()
	if got := s.SanitizeBody(""); got != "" {
		t.Errorf("expected empty string back, got %q", got)
	}
}

func TestSanitizer_SanitizeBody_NonObjectJSON(t *testing.T) {
	s := DefaultSanitizer()

	// Valid JSON that is not an object takes the fallback path.
	if got := s.SanitizeBody(`[1, 2, 3]`); got != `[1, 2, 3]` {
		t.Errorf("array body changed: %q", got)
	}
	if got := s.SanitizeBody(`"password=abc&y=2"`); !strings.Contains(got, "password=********") {
		t.Errorf("fallback not applied to non-object JSON: %q", got)
	}
}

func TestSanitizer_SanitizeHeaders(t *testing.T) {
	s := DefaultSanitizer()

	tests := []struct {
		name            string
		headers         http.Header
		expectMasked    []string
		expectNotMasked []string
	}{
		{
			name: "authorization masked",
			headers: http.Header{
				"Authorization": {"Bearer xyz"},
				"Content-Type":  {"application/json"},
			},
			expectMasked:    []string{"Authorization"},
			expectNotMasked: []string{"Content-Type"},
		},
		{
			name: "cookies and atlassian token masked",
			headers: http.Header{
				"Cookie":            {"JSESSIONID=abc"},
				"Set-Cookie":        {"crowd.token=def"},
				"X-Atlassian-Token": {"no-check"},
				"Accept":            {"application/json"},
			},
			expectMasked:    []string{"Cookie", "Set-Cookie", "X-Atlassian-Token"},
			expectNotMasked: []string{"Accept"},
		},
		{
			name: "matching is case-insensitive, casing preserved",
			headers: http.Header{
				"PROXY-AUTHORIZATION": {"Basic abc"},
			},
			expectMasked: []string{"PROXY-AUTHORIZATION"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SanitizeHeaders(tt.headers)

			for _, key := range tt.expectMasked {
				values, ok := result[key]
				if !ok {
					t.Fatalf("expected key %q in result", key)
				}
				for _, v := range values {
					if v != Mask {
						t.Errorf("expected %q masked, got %q", key, v)
					}
				}
			}
			for _, key := range tt.expectNotMasked {
				for i, v := range result[key] {
					if v != tt.headers[key][i] {
						t.Errorf("expected %q untouched, got %q", key, v)
					}
				}
			}
		})
	}
}

func TestSanitizer_SanitizeHeaders_NilPassesThrough(t *testing.T) {
	if got := DefaultSanitizer().SanitizeHeaders(nil); got != nil {
		t.Errorf("expected nil back, got %v", got)
	}
}

func TestSanitizer_SanitizeHeaders_InputNotMutated(t *testing.T) {
	headers := http.Header{"Authorization": {"Bearer xyz"}}
	DefaultSanitizer().SanitizeHeaders(headers)
	if headers.Get("Authorization") != "Bearer xyz" {
		t.Error("input headers were mutated")
	}
}

func TestSanitizer_SanitizeHeaderMap(t *testing.T) {
	s := DefaultSanitizer()

	result := s.SanitizeHeaderMap(map[string]string{
		"Authorization": "Bearer xyz",
		"Accept":        "application/json",
	})
	if result["Authorization"] != Mask {
		t.Errorf("expected Authorization masked, got %q", result["Authorization"])
	}
	if result["Accept"] != "application/json" {
		t.Errorf("expected Accept untouched, got %q", result["Accept"])
	}

	if got := s.SanitizeHeaderMap(nil); got != nil {
		t.Errorf("expected nil back, got %v", got)
	}
}

func TestSanitizer_CustomDenyListAndMask(t *testing.T) {
	s := NewSanitizer()
	s.AddSensitiveHeader("X-Session-ID")
	s.AddSensitiveKey("pin")
	s.SetMask("[REDACTED]")

	headers := s.SanitizeHeaders(http.Header{
		"X-Session-Id":  {"sess-1"},
		"Authorization": {"Bearer xyz"},
	})
	if headers["X-Session-Id"][0] != "[REDACTED]" {
		t.Errorf("custom header not masked: %v", headers)
	}
	// Built-in list is not active on an empty sanitizer.
	if headers["Authorization"][0] != "Bearer xyz" {
		t.Errorf("unexpected masking: %v", headers)
	}

	body := s.SanitizeBody(`{"pin": "1234"}`)
	if !strings.Contains(body, `"pin":"[REDACTED]"`) {
		t.Errorf("custom key not masked: %s", body)
	}
}

func TestPackageLevelSanitizers(t *testing.T) {
	headers := SanitizeHeaders(http.Header{"Cookie": {"a=b"}})
	if headers["Cookie"][0] != Mask {
		t.Errorf("expected Cookie masked, got %v", headers)
	}
	if got := SanitizeBody(`{"password":"p"}`); strings.Contains(got, `"p"`) {
		t.Errorf("expected password masked, got %s", got)
	}
}

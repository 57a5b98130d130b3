package jiraerror

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/jirakit/jirakit/pkg/config"
)

// Mask is the placeholder substituted for sensitive values.
const Mask = "********"

var defaultSensitiveHeaders = []string{
	"authorization",
	"cookie",
	"set-cookie",
	"x-atlassian-token",
	"proxy-authorization",
}

var defaultSensitiveKeys = []string{
	"password",
	"token",
	"secret",
	"access_token",
}

// Fallback patterns for bodies that do not parse as a JSON object. They
// cover quoted JSON-style password fields and form-encoded password
// parameters; other formats (XML, multipart) are not scanned.
var (
	jsonPasswordPattern = regexp.MustCompile(`(?i)("password"\s*:\s*")[^"]+(")`)
	formPasswordPattern = regexp.MustCompile(`(?i)password=[^&\s]+`)
)

// Sanitizer masks sensitive values in HTTP headers and bodies before they
// are rendered into diagnostics. Matching is case-insensitive; the stored
// key casing is preserved.
type Sanitizer struct {
	sensitiveHeaders map[string]bool
	sensitiveKeys    map[string]bool
	mask             string
}

// DefaultSanitizer creates a sanitizer with the built-in deny lists
func DefaultSanitizer() *Sanitizer {
	s := NewSanitizer()
	for _, name := range defaultSensitiveHeaders {
		s.AddSensitiveHeader(name)
	}
	for _, name := range defaultSensitiveKeys {
		s.AddSensitiveKey(name)
	}
	return s
}

// NewSanitizer creates a sanitizer with empty deny lists.
// Use this for complete control over what gets masked.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		sensitiveHeaders: make(map[string]bool),
		sensitiveKeys:    make(map[string]bool),
		mask:             Mask,
	}
}

// SanitizerFromConfig creates a sanitizer with the built-in deny lists
// extended by the configured names
func SanitizerFromConfig(cfg *config.Config) *Sanitizer {
	s := DefaultSanitizer()
	if cfg == nil {
		return s
	}
	for _, name := range cfg.SensitiveHeaders {
		s.AddSensitiveHeader(name)
	}
	for _, name := range cfg.SensitiveKeys {
		s.AddSensitiveKey(name)
	}
	if cfg.Mask != "" {
		s.SetMask(cfg.Mask)
	}
	return s
}

// AddSensitiveHeader adds a header name to the deny list
func (s *Sanitizer) AddSensitiveHeader(name string) {
	s.sensitiveHeaders[strings.ToLower(name)] = true
}

// AddSensitiveKey adds a JSON key name to the deny list
func (s *Sanitizer) AddSensitiveKey(name string) {
	s.sensitiveKeys[strings.ToLower(name)] = true
}

// SetMask overrides the placeholder substituted for sensitive values
func (s *Sanitizer) SetMask(mask string) {
	s.mask = mask
}

// SanitizeHeaders returns a copy of headers with sensitive values masked.
// A nil map passes through unchanged.
func (s *Sanitizer) SanitizeHeaders(headers http.Header) http.Header {
	if headers == nil {
		return nil
	}

	sanitized := make(http.Header, len(headers))
	for key, values := range headers {
		if s.sensitiveHeaders[strings.ToLower(key)] {
			masked := make([]string, len(values))
			for i := range values {
				masked[i] = s.mask
			}
			sanitized[key] = masked
		} else {
			sanitized[key] = append([]string(nil), values...)
		}
	}
	return sanitized
}

// SanitizeHeaderMap is SanitizeHeaders for a single-valued header map
func (s *Sanitizer) SanitizeHeaderMap(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}

	sanitized := make(map[string]string, len(headers))
	for key, value := range headers {
		if s.sensitiveHeaders[strings.ToLower(key)] {
			sanitized[key] = s.mask
		} else {
			sanitized[key] = value
		}
	}
	return sanitized
}

// SanitizeBody masks sensitive fields in a request or response body.
//
// A body that parses as a JSON object is scrubbed recursively: every key on
// the deny list has its value replaced with the mask, nested objects and
// array elements included, and the result is re-serialized. Re-serialization
// may reformat whitespace and key order relative to the original text.
//
// Anything else falls back to the best-effort password patterns above.
// A body with no password-like substrings comes back unchanged.
func (s *Sanitizer) SanitizeBody(body string) string {
	var data any
	if err := json.Unmarshal([]byte(body), &data); err == nil {
		if obj, ok := data.(map[string]any); ok {
			scrubbed, err := json.Marshal(s.scrub(obj))
			if err == nil {
				return string(scrubbed)
			}
		}
	}

	body = jsonPasswordPattern.ReplaceAllString(body, "${1}"+s.mask+"${2}")
	body = formPasswordPattern.ReplaceAllString(body, "password="+s.mask)
	return body
}

// scrub returns a copy of value with sensitive keys masked. The input is
// never mutated.
func (s *Sanitizer) scrub(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			if s.sensitiveKeys[strings.ToLower(key)] {
				out[key] = s.mask
			} else {
				out[key] = s.scrub(item)
			}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = s.scrub(item)
		}
		return out
	default:
		return value
	}
}

// defaultSanitizerInstance backs the package-level convenience functions.
var defaultSanitizerInstance = DefaultSanitizer()

// SanitizeHeaders masks sensitive values using the default deny lists
func SanitizeHeaders(headers http.Header) http.Header {
	return defaultSanitizerInstance.SanitizeHeaders(headers)
}

// SanitizeBody masks sensitive body fields using the default deny lists
func SanitizeBody(body string) string {
	return defaultSanitizerInstance.SanitizeBody(body)
}

// Package jiraerror provides error-reporting primitives for a Jira REST
// client: an error type carrying HTTP request/response context with
// sensitive values masked before display, and a type-guard error for misuse
// detection.
//
// # Sanitization
//
// Headers on a fixed deny list (Authorization, Cookie, Set-Cookie,
// X-Atlassian-Token, Proxy-Authorization) and JSON body fields on a fixed
// deny list (password, token, secret, access_token) are replaced with the
// mask "********". Matching is case-insensitive. Bodies that do not parse as
// a JSON object go through two best-effort password patterns instead.
//
// Known gap: the non-JSON fallback only recognizes quoted "password" fields
// and form-encoded password= parameters. Secrets carried in other body
// formats, such as XML or multipart, are not masked.
//
// # Diagnostics
//
// Rendering is lazy. In inline mode the full masked detail block is part of
// the rendered string; in file mode it is written to a jiraerror-*.tmp file
// in the default temp directory and the string references the path. The file
// is left behind for later inspection.
package jiraerror

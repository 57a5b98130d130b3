// Package config decides diagnostics behavior for jirakit errors.
//
// The surrounding application resolves a Diagnostics value once, from the
// environment markers (FromEnv), an optional .env file (LoadEnvFile), or a
// YAML file (LoadFile), and threads it into error construction. Errors
// never read process-wide state themselves.
package config

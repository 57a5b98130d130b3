package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jirakit/jirakit/pkg/types"
)

// Environment markers recognized by FromEnv.
const (
	// EnvLogToTempfile switches diagnostics to file mode when present,
	// regardless of value.
	EnvLogToTempfile = "JIRAKIT_LOG_TO_TEMPFILE"

	// EnvCIRun marks a continuous-integration run. Informational only;
	// rendering does not consult it.
	EnvCIRun = "GITHUB_ACTION"
)

// Diagnostics is the explicit configuration threaded into error
// construction. Values are decided once by the surrounding application and
// frozen into each error at construction time.
type Diagnostics struct {
	// Mode selects inline or file-based detail rendering.
	Mode types.DiagnosticsMode

	// CIRun records whether the process runs under CI.
	CIRun bool
}

// Default returns inline diagnostics outside CI
func Default() Diagnostics {
	return Diagnostics{Mode: types.DiagnosticsInline}
}

// FromEnv derives a Diagnostics value from the environment markers.
// Presence of the marker is what matters, not its value.
func FromEnv() Diagnostics {
	d := Default()
	if _, ok := os.LookupEnv(EnvLogToTempfile); ok {
		d.Mode = types.DiagnosticsFile
	}
	if _, ok := os.LookupEnv(EnvCIRun); ok {
		d.CIRun = true
	}
	return d
}

// LoadEnvFile loads the named .env files into the process environment
// before the markers are read. Existing variables are not overwritten.
func LoadEnvFile(paths ...string) error {
	return godotenv.Load(paths...)
}

package types

// DiagnosticsMode controls where a rendered error places its detail block.
type DiagnosticsMode string

const (
	// DiagnosticsInline appends the detail block to the rendered string.
	DiagnosticsInline DiagnosticsMode = "inline"

	// DiagnosticsFile writes the detail block to a temporary file and
	// references the file path from the rendered string.
	DiagnosticsFile DiagnosticsMode = "file"
)

// Valid reports whether the mode is one of the defined values
func (m DiagnosticsMode) Valid() bool {
	switch m {
	case DiagnosticsInline, DiagnosticsFile:
		return true
	}
	return false
}

// String implements fmt.Stringer
func (m DiagnosticsMode) String() string {
	return string(m)
}

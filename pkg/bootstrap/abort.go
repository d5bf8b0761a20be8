package bootstrap

import "strings"

// Stage identifies which terminal outcome an abort represents.
type Stage int

const (
	// StageInit means initialization failures were present at hand-off
	// time, so the entry point was never invoked
	StageInit Stage = iota

	// StageRun means the hand-off sequence itself failed
	StageRun
)

// AbortError is the terminal outcome of a failed hand-off. Its message
// carries the full report: every collected initialization failure for
// StageInit, or the cause plus the discovered installation directory for
// StageRun (to aid diagnosing a wrong install-root guess).
type AbortError struct {
	Stage      Stage
	Failures   []error
	Cause      error
	InstallDir string
}

func (e *AbortError) Error() string {
	var sb strings.Builder
	switch e.Stage {
	case StageInit:
		sb.WriteString("configuration error during init, see failures:\n")
		for _, f := range e.Failures {
			sb.WriteString(f.Error())
			sb.WriteString("\n")
		}
	case StageRun:
		sb.WriteString(e.Cause.Error())
		sb.WriteString("\ninstallation directory was detected as: ")
		sb.WriteString(e.InstallDir)
	}
	return sb.String()
}

func (e *AbortError) Unwrap() error {
	return e.Cause
}

package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the five terminal failure kinds. Every error the runner
// returns matches exactly one of these under errors.Is.
var (
	ErrMissingInput       = errors.New("missing input file")
	ErrExecutableNotFound = errors.New("executable not found")
	ErrProcessStart       = errors.New("process start failed")
	ErrProcessExit        = errors.New("process exited nonzero")
	ErrStreamInterrupted  = errors.New("output stream interrupted")
)

// FailureKind returns a stable short name for an error's failure class, used
// by the history store. Unclassified errors report "internal".
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingInput):
		return "missing-input"
	case errors.Is(err, ErrExecutableNotFound):
		return "executable-not-found"
	case errors.Is(err, ErrProcessStart):
		return "process-start-failed"
	case errors.Is(err, ErrProcessExit):
		return "process-exited-nonzero"
	case errors.Is(err, ErrStreamInterrupted):
		return "stream-interrupted"
	default:
		return "internal"
	}
}

// Input roles reported by missing-input failures.
const (
	RolePrimary = "primary"
	RoleExtra   = "extra"
)

// MissingPath identifies one nonexistent input and the role it played.
type MissingPath struct {
	Role string
	Path string
}

// MissingInputError enumerates every input path that failed the pre-spawn
// existence check.
type MissingInputError struct {
	Paths []MissingPath
}

func (e *MissingInputError) Error() string {
	details := make([]string, len(e.Paths))
	for i, p := range e.Paths {
		details[i] = fmt.Sprintf("%s file not found: %q", p.Role, p.Path)
	}
	return "missing input files: " + strings.Join(details, "; ")
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// ExecutableNotFoundError reports that the requested binary could not be
// located on PATH (or at its explicit path).
type ExecutableNotFoundError struct {
	Name string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("executable not found: %s; ensure it is installed and available on PATH", e.Name)
}

func (e *ExecutableNotFoundError) Unwrap() error { return ErrExecutableNotFound }

// StartError reports an OS-level spawn failure other than a missing binary.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start process %s: %v", e.Name, e.Err)
}

func (e *StartError) Unwrap() []error { return []error{ErrProcessStart, e.Err} }

// ExitStatusError carries both the raw exit status and its signed 32-bit
// reinterpretation.
type ExitStatusError struct {
	Raw        int64
	Normalized int64
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("process exited with code %d (interpreted as %d)", e.Raw, e.Normalized)
}

func (e *ExitStatusError) Unwrap() error { return ErrProcessExit }

// StreamError reports a failure while reading the child's combined output.
// The runner kills the child before returning one of these.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("reading process output: %v", e.Err)
}

func (e *StreamError) Unwrap() []error { return []error{ErrStreamInterrupted, e.Err} }

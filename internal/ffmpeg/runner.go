package ffmpeg

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/exec"
)

// commandContext is swapped out by tests.
var commandContext = exec.CommandContext

// LineSink receives one line of combined process output at a time, in
// emission order, while the process is still running.
type LineSink func(line string)

const maxOutputLineBytes = 1024 * 1024

// Run validates the invocation's inputs, spawns the process, streams its
// combined stdout/stderr to sink, and normalizes the exit status. A nil sink
// discards output. The returned error, if any, matches one of the package
// sentinels under errors.Is.
//
// There is no internal timeout: ctx is the only way to bound the child's run
// time, and a preview's duration limit bounds the processed media, not the
// encoder's wall clock.
func Run(ctx context.Context, inv Invocation, sink LineSink) error {
	if err := checkInputs(inv); err != nil {
		return err
	}

	resolved, err := exec.LookPath(inv.Binary)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return &ExecutableNotFoundError{Name: inv.Binary}
		}
		return &StartError{Name: inv.Binary, Err: err}
	}

	cmd := commandContext(ctx, resolved, inv.Args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &StartError{Name: inv.Binary, Err: err}
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return &ExecutableNotFoundError{Name: inv.Binary}
		}
		return &StartError{Name: inv.Binary, Err: err}
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOutputLineBytes)
	for scanner.Scan() {
		if sink != nil {
			sink(scanner.Text())
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		// Never leave an orphaned child behind a broken pipe.
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return &StreamError{Err: scanErr}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			raw := int64(exitErr.ExitCode())
			return &ExitStatusError{Raw: raw, Normalized: NormalizeExitCode(raw)}
		}
		return &StartError{Name: inv.Binary, Err: err}
	}
	return nil
}

func checkInputs(inv Invocation) error {
	var missing []MissingPath
	if !isRegularFile(inv.PrimaryInput) {
		missing = append(missing, MissingPath{Role: RolePrimary, Path: inv.PrimaryInput})
	}
	for _, path := range inv.ExtraInputs {
		if !isRegularFile(path) {
			missing = append(missing, MissingPath{Role: RoleExtra, Path: path})
		}
	}
	if len(missing) > 0 {
		return &MissingInputError{Paths: missing}
	}
	return nil
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

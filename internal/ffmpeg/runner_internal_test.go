package ffmpeg

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

// Run spawns through the commandContext variable so tests can intercept the
// process without a real encoder. This verifies the resolved binary and the
// argument vector cross the seam intact, and that the substituted command is
// the one that actually runs.
func TestRunSpawnsThroughCommandContext(t *testing.T) {
	dir := t.TempDir()

	configured := filepath.Join(dir, "fake-ffmpeg")
	if err := os.WriteFile(configured, []byte("#!/bin/sh\necho configured\nexit 1\n"), 0o755); err != nil {
		t.Fatalf("write configured binary: %v", err)
	}
	substitute := filepath.Join(dir, "substitute")
	if err := os.WriteFile(substitute, []byte("#!/bin/sh\necho substituted\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write substitute binary: %v", err)
	}
	input := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(input, []byte("media"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	orig := commandContext
	t.Cleanup(func() { commandContext = orig })

	var gotName string
	var gotArgs []string
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		return exec.CommandContext(ctx, substitute)
	}

	var lines []string
	err := Run(context.Background(), Invocation{
		Binary:       configured,
		Args:         []string{"-y", "-i", input},
		PrimaryInput: input,
	}, func(line string) { lines = append(lines, line) })
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if gotName != configured {
		t.Fatalf("seam received binary %q, want %q", gotName, configured)
	}
	if !reflect.DeepEqual(gotArgs, []string{"-y", "-i", input}) {
		t.Fatalf("seam received args %v", gotArgs)
	}
	if !reflect.DeepEqual(lines, []string{"substituted"}) {
		t.Fatalf("substituted command did not run: %v", lines)
	}
}

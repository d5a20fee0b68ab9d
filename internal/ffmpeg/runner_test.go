package ffmpeg_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"mangler/internal/ffmpeg"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func writeInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("media"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRunStreamsLinesInOrder(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "fake-ffmpeg", "echo first\necho second >&2\necho third\nexit 0\n")
	input := writeInput(t, dir, "clip.mp4")

	var lines []string
	err := ffmpeg.Run(context.Background(), ffmpeg.Invocation{
		Binary:       script,
		PrimaryInput: input,
	}, func(line string) { lines = append(lines, line) })
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	// stderr is folded into stdout, so all three lines arrive in order.
	if !reflect.DeepEqual(lines, []string{"first", "second", "third"}) {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestRunNonzeroExitReportsBothCodes(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "fake-ffmpeg", "exit 3\n")
	input := writeInput(t, dir, "clip.mp4")

	err := ffmpeg.Run(context.Background(), ffmpeg.Invocation{Binary: script, PrimaryInput: input}, nil)
	if !errors.Is(err, ffmpeg.ErrProcessExit) {
		t.Fatalf("expected ErrProcessExit, got %v", err)
	}
	var exitErr *ffmpeg.ExitStatusError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitStatusError, got %T", err)
	}
	if exitErr.Raw != 3 || exitErr.Normalized != 3 {
		t.Fatalf("unexpected codes: raw=%d normalized=%d", exitErr.Raw, exitErr.Normalized)
	}
}

func TestRunMissingPrimaryNeverSpawns(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "spawned")
	script := writeScript(t, dir, "fake-ffmpeg", "touch "+marker+"\nexit 0\n")
	extra := writeInput(t, dir, "extra.png")

	err := ffmpeg.Run(context.Background(), ffmpeg.Invocation{
		Binary:       script,
		PrimaryInput: filepath.Join(dir, "absent.mp4"),
		ExtraInputs:  []string{extra},
	}, nil)
	if !errors.Is(err, ffmpeg.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if _, statErr := os.Stat(marker); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("process was spawned despite missing input")
	}
}

func TestRunEnumeratesEveryMissingPath(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "fake-ffmpeg", "exit 0\n")

	err := ffmpeg.Run(context.Background(), ffmpeg.Invocation{
		Binary:       script,
		PrimaryInput: filepath.Join(dir, "absent.mp4"),
		ExtraInputs:  []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.mp3")},
	}, nil)

	var missing *ffmpeg.MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingInputError, got %v", err)
	}
	if len(missing.Paths) != 3 {
		t.Fatalf("expected 3 missing paths, got %+v", missing.Paths)
	}
	if missing.Paths[0].Role != ffmpeg.RolePrimary {
		t.Fatalf("first entry should be the primary input: %+v", missing.Paths[0])
	}
	for _, p := range missing.Paths[1:] {
		if p.Role != ffmpeg.RoleExtra {
			t.Fatalf("expected extra role, got %+v", p)
		}
	}
}

func TestRunOversizedLineInterruptsStreamAndKillsChild(t *testing.T) {
	dir := t.TempDir()
	pidFile := filepath.Join(dir, "pid")
	// Emit one line larger than the scanner's 1 MiB limit, then hang. The
	// reader must fail with bufio.ErrTooLong and the runner must not leave
	// the child behind.
	body := "echo $$ > " + pidFile + "\n" +
		"head -c 2097152 /dev/zero | tr '\\0' 'x'\n" +
		"echo\n" +
		"sleep 60\n"
	script := writeScript(t, dir, "fake-ffmpeg", body)
	input := writeInput(t, dir, "clip.mp4")

	err := ffmpeg.Run(context.Background(), ffmpeg.Invocation{
		Binary:       script,
		PrimaryInput: input,
	}, nil)
	if !errors.Is(err, ffmpeg.ErrStreamInterrupted) {
		t.Fatalf("expected ErrStreamInterrupted, got %v", err)
	}
	var streamErr *ffmpeg.StreamError
	if !errors.As(err, &streamErr) {
		t.Fatalf("expected StreamError, got %T", err)
	}

	raw, readErr := os.ReadFile(pidFile)
	if readErr != nil {
		t.Fatalf("read pid file: %v", readErr)
	}
	pid, convErr := strconv.Atoi(strings.TrimSpace(string(raw)))
	if convErr != nil {
		t.Fatalf("parse pid %q: %v", raw, convErr)
	}
	if killErr := syscall.Kill(pid, 0); killErr == nil {
		t.Fatalf("child %d still alive after stream failure", pid)
	}
}

func TestRunMissingExecutable(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "clip.mp4")

	err := ffmpeg.Run(context.Background(), ffmpeg.Invocation{
		Binary:       "definitely-not-a-real-encoder",
		PrimaryInput: input,
	}, nil)
	if !errors.Is(err, ffmpeg.ErrExecutableNotFound) {
		t.Fatalf("expected ErrExecutableNotFound, got %v", err)
	}
	var notFound *ffmpeg.ExecutableNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "definitely-not-a-real-encoder" {
		t.Fatalf("error should name the requested executable: %v", err)
	}
}

func TestFailureKindClassification(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&ffmpeg.MissingInputError{}, "missing-input"},
		{&ffmpeg.ExecutableNotFoundError{Name: "ffmpeg"}, "executable-not-found"},
		{&ffmpeg.StartError{Name: "ffmpeg", Err: errors.New("boom")}, "process-start-failed"},
		{&ffmpeg.ExitStatusError{Raw: 4294967294, Normalized: -2}, "process-exited-nonzero"},
		{&ffmpeg.StreamError{Err: errors.New("broken pipe")}, "stream-interrupted"},
		{errors.New("other"), "internal"},
	}
	for _, tc := range cases {
		if got := ffmpeg.FailureKind(tc.err); got != tc.want {
			t.Fatalf("FailureKind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

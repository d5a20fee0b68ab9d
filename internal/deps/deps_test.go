package deps_test

import (
	"os"
	"path/filepath"
	"testing"

	"mangler/internal/deps"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "Nonexistent", Command: "mangler-test-missing-binary"},
		{Name: "Unset", Command: ""},
	})
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("missing binary should not be available")
	}
	if statuses[1].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", statuses[1].Detail)
	}
}

func TestCheckBinariesFindsStub(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "mangler-test-tool")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "Tool", Command: "mangler-test-tool"},
	})
	if !statuses[0].Available {
		t.Fatalf("expected stub to be found: %+v", statuses[0])
	}
}

func TestResolveFFmpegPathPrefersOverride(t *testing.T) {
	if got := deps.ResolveFFmpegPath("/opt/ffmpeg/bin/ffmpeg"); got != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("override not honored: %q", got)
	}
}

func TestResolveFFprobePathFallsBackToName(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if got := deps.ResolveFFprobePath(""); got != "ffprobe" {
		t.Fatalf("expected bare name fallback, got %q", got)
	}
}

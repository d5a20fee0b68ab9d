package deps

import (
	"os/exec"
	"strings"
)

// ResolveFFmpegPath reports the ffmpeg binary a render would execute. An
// explicit config override wins; otherwise "ffmpeg" is resolved from PATH.
// When resolution fails the bare name is returned so callers can still show
// what was attempted.
func ResolveFFmpegPath(override string) string {
	return resolveTool("ffmpeg", override)
}

// ResolveFFprobePath mirrors ResolveFFmpegPath for ffprobe.
func ResolveFFprobePath(override string) string {
	return resolveTool("ffprobe", override)
}

func resolveTool(name, override string) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" && trimmed != name {
		return trimmed
	}
	if resolved, err := exec.LookPath(name); err == nil {
		return resolved
	}
	return name
}

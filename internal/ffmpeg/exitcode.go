package ffmpeg

// NormalizeExitCode reinterprets an unsigned 32-bit wraparound of a negative
// signed exit code. Windows reports negative statuses this way, so a child
// that died with -2 surfaces as 4294967294.
func NormalizeExitCode(raw int64) int64 {
	if raw >= 1<<31 {
		return raw - 1<<32
	}
	return raw
}

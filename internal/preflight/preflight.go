package preflight

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/sys/unix"

	"mangler/internal/config"
	"mangler/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every environment check for the given config. Asset pool
// checks are informational: a missing pool directory passes with a note, since
// empty pools only degrade the effects that draw from them.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	pools := cfg.PoolDirs()
	names := make([]string, 0, len(pools))
	for name := range pools {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		results = append(results, CheckAssetPool(name, pools[name]))
	}

	return results
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckAssetPool reports whether an asset pool directory is usable. Absent
// pools pass; effects drawing from them simply no-op.
func CheckAssetPool(name, path string) Result {
	label := "Asset pool " + name
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: label, Passed: true, Detail: fmt.Sprintf("%s (absent, pool empty)", path)}
		}
		return Result{Name: label, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: label, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: label, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: label, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}

// CheckSystemDeps evaluates the external binaries mangler shells out to.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	var ffmpegOverride, ffprobeOverride string
	if cfg != nil {
		ffmpegOverride = cfg.FFmpeg.Binary
		ffprobeOverride = cfg.FFmpeg.FFprobe
	}
	requirements := []deps.Requirement{
		{
			Name:        "FFmpeg",
			Command:     deps.ResolveFFmpegPath(ffmpegOverride),
			Description: "Required for rendering",
		},
		{
			Name:        "FFprobe",
			Command:     deps.ResolveFFprobePath(ffprobeOverride),
			Description: "Required for media inspection",
			Optional:    true,
		},
	}
	return deps.CheckBinaries(requirements)
}

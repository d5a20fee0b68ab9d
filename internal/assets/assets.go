// Package assets gathers asset pools from directories on disk.
//
// A pool is a flat, sorted list of media files collected from one directory.
// Scanning is non-recursive and filtered by extension; a directory that does
// not exist or holds nothing usable yields an empty pool, never an error, so
// an unconfigured pool simply means the effects that draw from it no-op.
package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mangler/internal/effects"
)

var mediaExtensions = map[string]struct{}{
	// images
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {}, ".bmp": {},
	// audio
	".mp3": {}, ".wav": {}, ".aac": {}, ".m4a": {}, ".ogg": {},
	// video
	".mp4": {}, ".mov": {}, ".mkv": {}, ".webm": {}, ".avi": {},
}

// Scan lists the media files directly inside dir, sorted by name.
func Scan(dir string) []string {
	if strings.TrimSpace(dir) == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := mediaExtensions[ext]; !ok {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files
}

// ScanPools builds the pool set for the configured directories. Pool names
// with empty directories are still present in the result so callers can
// distinguish "configured but empty" from "unknown pool name".
func ScanPools(dirs map[string]string) effects.Pools {
	pools := make(effects.Pools, len(dirs))
	for name, dir := range dirs {
		pools[name] = Scan(dir)
	}
	return pools
}

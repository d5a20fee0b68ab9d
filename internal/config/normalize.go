package config

import "strings"

// normalize expands and absolutizes every path field so the rest of the
// program never sees a tilde or a relative directory.
func (c *Config) normalize() error {
	paths := []*string{
		&c.Paths.OutputDir,
		&c.Paths.LogDir,
		&c.Paths.StateDir,
		&c.Assets.ImagesDir,
		&c.Assets.SoundsDir,
		&c.Assets.MemesDir,
		&c.Assets.MemeSoundsDir,
		&c.Assets.AdvertsDir,
		&c.Assets.ErrorsDir,
		&c.Assets.OverlayVideosDir,
	}
	for _, field := range paths {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			*field = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)
	c.FFmpeg.FFprobe = strings.TrimSpace(c.FFmpeg.FFprobe)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

package config

const (
	defaultOutputDir       = "~/.local/share/mangler/outputs"
	defaultLogDir          = "~/.local/share/mangler/logs"
	defaultStateDir        = "~/.local/share/mangler"
	defaultAssetsRoot      = "~/.local/share/mangler/assets"
	defaultPreviewDuration = 10
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			StateDir:  defaultStateDir,
		},
		Assets: Assets{
			ImagesDir:        defaultAssetsRoot + "/images",
			SoundsDir:        defaultAssetsRoot + "/sounds",
			MemesDir:         defaultAssetsRoot + "/memes",
			MemeSoundsDir:    defaultAssetsRoot + "/meme_sounds",
			AdvertsDir:       defaultAssetsRoot + "/adverts",
			ErrorsDir:        defaultAssetsRoot + "/errors",
			OverlayVideosDir: defaultAssetsRoot + "/overlay_videos",
		},
		Render: Render{
			PreviewDurationSeconds: defaultPreviewDuration,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

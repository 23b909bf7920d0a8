package config

const (
	defaultDataDir         = "~/.local/share/marquee"
	defaultPosterCacheDir  = "~/.cache/marquee/posters"
	defaultLogDir          = "~/.local/share/marquee/logs"
	defaultTMDBBaseURL     = "https://api.themoviedb.org/3"
	defaultImageBaseURL    = "https://image.tmdb.org/t/p"
	defaultTMDBLanguage    = "en-US"
	defaultRequestTimeout  = 5
	defaultImageTimeout    = 3
	defaultSessionTTLHours = 12
	defaultPosterSize      = "w500"
	defaultBackdropSize    = "w1280"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:        defaultDataDir,
			PosterCacheDir: defaultPosterCacheDir,
			LogDir:         defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			ImageBaseURL:   defaultImageBaseURL,
			Language:       defaultTMDBLanguage,
			RequestTimeout: defaultRequestTimeout,
			ImageTimeout:   defaultImageTimeout,
		},
		Auth: Auth{
			SessionTTLHours: defaultSessionTTLHours,
			SeedDefaultUser: false,
		},
		Posters: Posters{
			Size:         defaultPosterSize,
			BackdropSize: defaultBackdropSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the recruiting CSV with a header row.
	DatasetPath string `koanf:"dataset_path"`

	// CollegeCoordsPath points at the optional YAML lookup mapping
	// college names to coordinates. Empty disables the resolver.
	CollegeCoordsPath string `koanf:"college_coords_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		DatasetPath:       "data/recruits.csv",
		CollegeCoordsPath: "data/college_locations.yaml",
	}
}
